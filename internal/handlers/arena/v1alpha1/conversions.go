package v1alpha1

import (
	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

func convertCharacterToProto(c *entities.Character) *arenav1alpha1.Character {
	if c == nil {
		return nil
	}
	return &arenav1alpha1.Character{
		Id:          c.ID,
		Name:        c.Name,
		Class:       string(c.Class),
		Health:      int32(c.Health),
		MaxHealth:   int32(c.MaxHealth),
		Attack:      int32(c.Attack),
		Defense:     int32(c.Defense),
		Speed:       int32(c.Speed),
		Special:     int32(c.Special),
		SpecialName: c.SpecialName,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func convertCharactersToProto(chars []*entities.Character) []*arenav1alpha1.Character {
	out := make([]*arenav1alpha1.Character, 0, len(chars))
	for _, c := range chars {
		out = append(out, convertCharacterToProto(c))
	}
	return out
}

func convertItemToProto(item entities.Item) *arenav1alpha1.Item {
	return &arenav1alpha1.Item{
		Id:        item.ID,
		Name:      item.Name,
		ItemClass: string(item.Class),
		Value:     int32(item.Value),
		Custom:    item.Custom,
	}
}

func convertItemsToProto(list []entities.Item) []*arenav1alpha1.Item {
	out := make([]*arenav1alpha1.Item, 0, len(list))
	for _, item := range list {
		out = append(out, convertItemToProto(item))
	}
	return out
}

func convertInventoryToProto(inv *entities.Inventory) *arenav1alpha1.Inventory {
	if inv == nil {
		return nil
	}
	return &arenav1alpha1.Inventory{
		OwnerId:   inv.OwnerID,
		Items:     convertItemsToProto(inv.Items),
		UpdatedAt: inv.UpdatedAt,
	}
}

func convertUserToProto(u *entities.User) *arenav1alpha1.User {
	if u == nil {
		return nil
	}
	ids := u.CharacterIDs
	if ids == nil {
		ids = []string{}
	}
	return &arenav1alpha1.User{
		Id:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Credits:      u.Credits,
		Role:         string(u.Role),
		CharacterIds: ids,
		CreatedAt:    u.CreatedAt,
	}
}

func convertEntryToProto(e *entities.LeaderboardEntry) *arenav1alpha1.LeaderboardEntry {
	if e == nil {
		return nil
	}
	return &arenav1alpha1.LeaderboardEntry{
		UserId:      e.UserID,
		Name:        e.Name,
		GamesPlayed: e.GamesPlayed,
		GamesWon:    e.GamesWon,
		Score:       e.Score,
		Rank:        e.Rank,
	}
}

func convertReportToProto(r *entities.BattleReport) *arenav1alpha1.BattleReport {
	if r == nil {
		return nil
	}

	participants := make([]*arenav1alpha1.Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		participants = append(participants, &arenav1alpha1.Participant{
			CharacterId: p.CharacterID,
			Name:        p.Name,
			Class:       string(p.Class),
			StartHealth: int32(p.StartHealth),
			EndHealth:   int32(p.EndHealth),
		})
	}

	log := make([]*arenav1alpha1.TurnEntry, 0, len(r.Log))
	for _, e := range r.Log {
		log = append(log, &arenav1alpha1.TurnEntry{
			Turn:         int32(e.Turn),
			ActorId:      e.ActorID,
			ActorName:    e.ActorName,
			TargetId:     e.TargetID,
			Hit:          e.Hit,
			Damage:       int32(e.Damage),
			TargetHealth: int32(e.TargetHealth),
			Message:      e.Message,
		})
	}

	return &arenav1alpha1.BattleReport{
		Id:           r.ID,
		Participants: participants,
		WinnerId:     r.WinnerID,
		Status:       string(r.Status),
		Turns:        int32(r.Turns),
		Log:          log,
		Summary:      r.Summary,
		CreatedAt:    r.CreatedAt,
	}
}

func convertEffectToProto(e items.Effect) *arenav1alpha1.Effect {
	return &arenav1alpha1.Effect{
		Kind:      string(e.Kind),
		Attribute: string(e.Attribute),
		Before:    int32(e.Before),
		After:     int32(e.After),
		Message:   e.Message,
	}
}

func convertClassToProto(cs stats.ClassStats, cost int64) *arenav1alpha1.ClassInfo {
	return &arenav1alpha1.ClassInfo{
		Class:       string(cs.Class),
		BaseHealth:  int32(cs.BaseHealth),
		BaseAttack:  int32(cs.BaseAttack),
		BaseDefense: int32(cs.BaseDefense),
		BaseSpeed:   int32(cs.BaseSpeed),
		SpecialName: cs.SpecialName,
		SpecialBase: int32(cs.SpecialBase),
		Cost:        cost,
	}
}

func convertDefinitionToProto(d items.Definition) *arenav1alpha1.ItemClassInfo {
	return &arenav1alpha1.ItemClassInfo{
		ItemClass:     string(d.Class),
		Effect:        string(d.Effect),
		BaseMagnitude: int32(d.BaseMagnitude),
		Attribute:     string(d.Attribute),
		SingleUse:     d.SingleUse,
	}
}

func intFromProto(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
