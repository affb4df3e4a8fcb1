package arenav1alpha1

// RegisterUserRequest creates an account
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterUserResponse returns the new account
type RegisterUserResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// GetUserRequest loads the acting user
type GetUserRequest struct{}

// GetUserResponse returns the acting user
type GetUserResponse struct {
	User *User `json:"user"`
}

// CreateCharacterRequest buys a character with a starting item
type CreateCharacterRequest struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	StartingItem string `json:"starting_item"`
}

// CreateCharacterResponse returns the new character and the charge
type CreateCharacterResponse struct {
	Character *Character `json:"character"`
	Inventory *Inventory `json:"inventory"`
	Cost      int64      `json:"cost"`
	Credits   int64      `json:"credits"`
	Message   string     `json:"message"`
}

// GetCharacterRequest loads an owned character
type GetCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

// GetCharacterResponse returns a character
type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

// ListCharactersRequest lists the acting user's characters
type ListCharactersRequest struct{}

// ListCharactersResponse lists characters in ownership order
type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
	MissingIds []string     `json:"missing_ids,omitempty"`
}

// UpdateCharacterRequest renames a character
type UpdateCharacterRequest struct {
	CharacterId string `json:"character_id"`
	Name        string `json:"name"`
	Class       string `json:"class,omitempty"`
}

// UpdateCharacterResponse returns the renamed character
type UpdateCharacterResponse struct {
	Character *Character `json:"character"`
	Message   string     `json:"message"`
}

// DeleteCharacterRequest deletes an owned character for a refund
type DeleteCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

// DeleteCharacterResponse reports the refund
type DeleteCharacterResponse struct {
	Refund  int64  `json:"refund"`
	Credits int64  `json:"credits"`
	Message string `json:"message"`
}

// GetCharacterStatsRequest counts the acting user's characters
type GetCharacterStatsRequest struct{}

// GetCharacterStatsResponse counts characters by class
type GetCharacterStatsResponse struct {
	Total           int32            `json:"total"`
	ByClass         map[string]int32 `json:"by_class"`
	MostPlayed      string           `json:"most_played,omitempty"`
	MostPlayedCount int32            `json:"most_played_count"`
}

// ClassInfo is a class template and its price
type ClassInfo struct {
	Class       string `json:"class"`
	BaseHealth  int32  `json:"base_health"`
	BaseAttack  int32  `json:"base_attack"`
	BaseDefense int32  `json:"base_defense"`
	BaseSpeed   int32  `json:"base_speed"`
	SpecialName string `json:"special_name"`
	SpecialBase int32  `json:"special_base"`
	Cost        int64  `json:"cost"`
}

// ListClassesRequest reads the class catalog
type ListClassesRequest struct{}

// ListClassesResponse lists the classes
type ListClassesResponse struct {
	Classes []*ClassInfo `json:"classes"`
}

// GetInventoryRequest reads a character's inventory
type GetInventoryRequest struct {
	CharacterId string `json:"character_id"`
}

// GetInventoryResponse returns the inventory
type GetInventoryResponse struct {
	Inventory *Inventory `json:"inventory"`
}

// AddItemRequest adds a stock item, or a custom one when Name or Value is set
type AddItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemClass   string `json:"item_class"`
	Name        string `json:"name,omitempty"`
	Value       *int32 `json:"value,omitempty"`
}

// AddItemResponse returns the added item
type AddItemResponse struct {
	Item      *Item      `json:"item"`
	Inventory *Inventory `json:"inventory"`
	Message   string     `json:"message"`
}

// RemoveItemRequest removes an item by id
type RemoveItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemId      string `json:"item_id"`
}

// RemoveItemResponse returns the removed item
type RemoveItemResponse struct {
	Item      *Item      `json:"item"`
	Inventory *Inventory `json:"inventory"`
	Message   string     `json:"message"`
}

// UseItemRequest uses the first item with the given name
type UseItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemName    string `json:"item_name"`
	TargetId    string `json:"target_id,omitempty"`
}

// Effect is what an item did to its target
type Effect struct {
	Kind      string `json:"kind"`
	Attribute string `json:"attribute"`
	Before    int32  `json:"before"`
	After     int32  `json:"after"`
	Message   string `json:"message"`
}

// UseItemResponse reports the effect
type UseItemResponse struct {
	Item      *Item      `json:"item"`
	Effect    *Effect    `json:"effect"`
	Consumed  bool       `json:"consumed"`
	Target    *Character `json:"target"`
	Inventory *Inventory `json:"inventory"`
	Message   string     `json:"message"`
}

// SearchItemsRequest filters an inventory. Empty fields impose no constraint.
type SearchItemsRequest struct {
	CharacterId string `json:"character_id"`
	Name        string `json:"name,omitempty"`
	ItemClass   string `json:"item_class,omitempty"`
	MinValue    *int32 `json:"min_value,omitempty"`
	MaxValue    *int32 `json:"max_value,omitempty"`
}

// SearchItemsResponse lists the matches in inventory order
type SearchItemsResponse struct {
	Items []*Item `json:"items"`
}

// GetInventoryStatsRequest summarizes an inventory
type GetInventoryStatsRequest struct {
	CharacterId string `json:"character_id"`
}

// ItemClassStats counts one item class
type ItemClassStats struct {
	Count      int32 `json:"count"`
	TotalValue int32 `json:"total_value"`
}

// GetInventoryStatsResponse counts items overall and per class
type GetInventoryStatsResponse struct {
	Count      int32                      `json:"count"`
	TotalValue int32                      `json:"total_value"`
	ByClass    map[string]*ItemClassStats `json:"by_class"`
}

// ItemClassInfo describes an item class
type ItemClassInfo struct {
	ItemClass     string `json:"item_class"`
	Effect        string `json:"effect"`
	BaseMagnitude int32  `json:"base_magnitude"`
	Attribute     string `json:"attribute"`
	SingleUse     bool   `json:"single_use"`
}

// ListItemClassesRequest reads the item catalog
type ListItemClassesRequest struct{}

// ListItemClassesResponse lists the item classes
type ListItemClassesResponse struct {
	ItemClasses []*ItemClassInfo `json:"item_classes"`
}

// StartCombatRequest pits two owned characters against each other
type StartCombatRequest struct {
	FirstCharacterId  string `json:"first_character_id"`
	SecondCharacterId string `json:"second_character_id"`
}

// StartCombatResponse returns the recorded battle
type StartCombatResponse struct {
	Report   *BattleReport     `json:"report"`
	First    *Character        `json:"first"`
	Second   *Character        `json:"second"`
	Standing *LeaderboardEntry `json:"standing"`
}

// GetCombatRequest loads a recorded battle
type GetCombatRequest struct {
	BattleId string `json:"battle_id"`
}

// GetCombatResponse returns a recorded battle
type GetCombatResponse struct {
	Report *BattleReport `json:"report"`
}

// ListCombatsRequest lists the acting user's recent battles
type ListCombatsRequest struct {
	Limit int32 `json:"limit,omitempty"`
}

// ListCombatsResponse lists battles newest first
type ListCombatsResponse struct {
	Reports []*BattleReport `json:"reports"`
}

// ListLeaderboardRequest reads the top standings
type ListLeaderboardRequest struct {
	Limit int64 `json:"limit,omitempty"`
}

// ListLeaderboardResponse lists standings by score
type ListLeaderboardResponse struct {
	Entries []*LeaderboardEntry `json:"entries"`
}

// GetUserStandingRequest reads the acting user's standing
type GetUserStandingRequest struct{}

// GetUserStandingResponse returns a standing
type GetUserStandingResponse struct {
	Entry *LeaderboardEntry `json:"entry"`
}

// Mission is a selectable mission
type Mission struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListMissionsRequest lists the available missions
type ListMissionsRequest struct{}

// ListMissionsResponse lists missions
type ListMissionsResponse struct {
	Missions []*Mission `json:"missions"`
}

// SelectMissionRequest starts a mission with a character
type SelectMissionRequest struct {
	MissionId   string `json:"mission_id"`
	CharacterId string `json:"character_id"`
}

// SelectMissionResponse reports the mission start
type SelectMissionResponse struct {
	Message string `json:"message"`
}
