package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Authenticate against the API",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := ""
		if len(args) == 1 {
			email = args[0]
		}
		if email == "" {
			email = prompt("Email: ")
		}
		password := promptPassword("Password: ")

		creds := types.LoginCredentials{Email: email, Password: password}
		if err := creds.Validate(); err != nil {
			exitErr("%v", err)
		}

		if err := sess.BeginAuth(); err != nil {
			exitErr("%v", err)
		}
		auth, err := api.Auth.Login(cmd.Context(), creds)
		if err != nil {
			sess.FailAuth()
			exitErr("login failed: %v", err)
		}
		if err := sess.CompleteAuth(cmd.Context(), auth); err != nil {
			exitErr("%v", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Logged in as %s (%s)\n", green("✓"), auth.User.Email, auth.User.Role)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and clear persisted credentials",
	Run: func(cmd *cobra.Command, args []string) {
		if err := sess.Logout(cmd.Context()); err != nil {
			exitErr("%v", err)
		}
		fmt.Println("Logged out")
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Run: func(cmd *cobra.Command, args []string) {
		form := types.RegisterForm{
			Name:             prompt("Name: "),
			Email:            prompt("Email: "),
			OrganizationName: prompt("Organization: "),
		}
		roleInput := prompt(fmt.Sprintf("Role (%s): ", strings.Join(roleNames(), ", ")))
		role, err := types.ParseRole(roleInput)
		if err != nil {
			exitErr("%v", err)
		}
		form.Role = role
		form.Password = promptPassword("Password: ")
		if confirm := promptPassword("Confirm password: "); confirm != form.Password {
			exitErr("passwords do not match")
		}

		if err := form.Validate(); err != nil {
			exitErr("%v", err)
		}

		if err := sess.BeginAuth(); err != nil {
			exitErr("%v", err)
		}
		auth, err := api.Auth.Register(cmd.Context(), form)
		if err != nil {
			sess.FailAuth()
			exitErr("registration failed: %v", err)
		}
		if err := sess.CompleteAuth(cmd.Context(), auth); err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("Registered and logged in as %s\n", auth.User.Email)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := requireAuth()
		if err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		fmt.Printf("Role:         %s\n", user.Role)
		if user.OrganizationName != "" {
			fmt.Printf("Organization: %s\n", user.OrganizationName)
		}
		if exp, ok := sess.TokenExpiry(); ok {
			fmt.Printf("Token valid until %s\n", exp.Format("2006-01-02 15:04:05"))
		}
	},
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Rotate the account password",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAuth(); err != nil {
			exitErr("%v", err)
		}
		current := promptPassword("Current password: ")
		next := promptPassword("New password: ")
		confirm := promptPassword("Confirm new password: ")
		if next != confirm {
			exitErr("passwords do not match")
		}
		if err := api.Auth.ChangePassword(cmd.Context(), current, next, confirm); err != nil {
			exitErr("%v", err)
		}
		fmt.Println("Password changed")
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Request a password reset email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.Auth.ForgotPassword(cmd.Context(), args[0]); err != nil {
			exitErr("%v", err)
		}
		fmt.Println("If the address exists, a reset email is on its way")
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <token>",
	Short: "Redeem a reset token for a new password",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password := promptPassword("New password: ")
		confirm := promptPassword("Confirm new password: ")
		auth, err := api.Auth.ResetPassword(cmd.Context(), args[0], password, confirm)
		if err != nil {
			exitErr("%v", err)
		}
		if err := sess.BeginAuth(); err == nil {
			_ = sess.CompleteAuth(cmd.Context(), auth)
		}
		fmt.Printf("Password reset; logged in as %s\n", auth.User.Email)
	},
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(label string) string {
	rl, err := readline.New(label)
	if err != nil {
		// Not a terminal; fall back to a plain read for piped input.
		return prompt(label)
	}
	defer func() { _ = rl.Close() }()
	data, err := rl.ReadPassword(label)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func roleNames() []string {
	roles := types.Roles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(changePasswordCmd)
	rootCmd.AddCommand(forgotPasswordCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}
