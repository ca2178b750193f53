package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crucial707/folio-api/cmd/cli/client"
	"github.com/crucial707/folio-api/cmd/cli/config"
	"github.com/crucial707/folio-api/internal/password"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is swapped in tests so no terminal is needed.
var readPassword = term.ReadPassword

// isTerminal reports whether stdin is interactive.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// InitAuth registers login, logout and hash-password on the root command.
func InitAuth(rootCmd *cobra.Command) {
	rootCmd.AddCommand(loginCmd(), logoutCmd(), hashPasswordCmd())
}

// ==========================
// Login
// ==========================
func loginCmd() *cobra.Command {
	var username string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the folio API",
		Long:  "Authenticate with the folio API and store the session token for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return errors.New("--username is required")
			}
			pw, err := getPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			var resp struct {
				Token string `json:"token"`
			}
			body := map[string]string{"username": username, "password": pw}
			if err := client.New().JSON(cmd.Context(), "POST", "/login", body, &resp); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if resp.Token == "" {
				return errors.New("login succeeded but no token returned")
			}
			if err := config.SaveToken(resp.Token); err != nil {
				return fmt.Errorf("save token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to authenticate as")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

// ==========================
// Logout
// ==========================
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.RemoveToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

// ==========================
// Hash Password
// ==========================

// hashPasswordCmd prints a hash suitable for the users.password_hash column.
func hashPasswordCmd() *cobra.Command {
	var algo string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a password for seeding the users collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := getPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}
			hash, err := password.Hash(pw, algo)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", password.AlgoBcrypt, "Hash algorithm: bcrypt or argon2id")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

func getPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin || !isTerminal() {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("read password: %w", err)
		}
		pw := strings.TrimRight(line, "\r\n")
		if pw == "" {
			return "", errors.New("empty password")
		}
		return pw, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(b) == 0 {
		return "", errors.New("empty password")
	}
	return string(b), nil
}
