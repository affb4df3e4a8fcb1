package client

import (
	"fmt"

	"github.com/spf13/cobra"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
)

var (
	registerName  string
	registerEmail string
)

var registerUserCmd = &cobra.Command{
	Use:   "register-user",
	Short: "Register a new arena account",
	RunE:  runRegisterUser,
}

var whoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the acting user",
	RunE:  runWhoAmI,
}

func init() {
	registerUserCmd.Flags().StringVar(&registerName, "name", "", "Account name (required)")
	registerUserCmd.Flags().StringVar(&registerEmail, "email", "", "Email address (required)")
	_ = registerUserCmd.MarkFlagRequired("name")  // nolint:errcheck // safe to ignore in init
	_ = registerUserCmd.MarkFlagRequired("email") // nolint:errcheck // safe to ignore in init
}

func runRegisterUser(_ *cobra.Command, _ []string) error {
	conn, cleanup, err := createConnection()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := arenav1alpha1.NewUserServiceClient(conn).RegisterUser(ctx, &arenav1alpha1.RegisterUserRequest{
		Name:  registerName,
		Email: registerEmail,
	})
	if err != nil {
		return requestError("register user", err)
	}

	fmt.Println(resp.Message)
	fmt.Printf("User ID: %s\n", resp.User.Id)
	return nil
}

func runWhoAmI(_ *cobra.Command, _ []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	conn, cleanup, err := createConnection()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := arenav1alpha1.NewUserServiceClient(conn).GetUser(ctx, &arenav1alpha1.GetUserRequest{})
	if err != nil {
		return requestError("get user", err)
	}

	u := resp.User
	fmt.Printf("%s <%s> (%s)\n", u.Name, u.Email, u.Role)
	fmt.Printf("Credits: %d\n", u.Credits)
	fmt.Printf("Characters: %d\n", len(u.CharacterIds))
	return nil
}
