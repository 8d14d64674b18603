package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/auth"
)

var (
	baseURL   string
	timeout   time.Duration
	authToken string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerd-cli",
		Short: "ledgerd CLI tool",
		Long:  `A command line interface for interacting with the ledgerd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledgerd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Bearer token for authenticated requests")

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	accountCmd.AddCommand(accountCreateCmd(), accountGetCmd(), accountListCmd())

	rootCmd.AddCommand(
		accountCmd,
		debitCmd(),
		creditCmd(),
		transferCmd(),
		eventsCmd(),
		tokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCreateCmd() *cobra.Command {
	var (
		id          string
		owner       string
		balance     string
		creditLimit string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"owner_id":        owner,
				"opening_balance": balance,
			}
			if id != "" {
				payload["id"] = id
			}
			if creditLimit != "" {
				payload["credit_limit"] = creditLimit
			}

			return postJSON("/api/v1/accounts/", payload)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Account ID (generated when empty)")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner principal ID")
	cmd.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	cmd.Flags().StringVar(&creditLimit, "credit-limit", "", "Credit limit (balance ceiling)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func accountGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}
}

func accountListCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/accounts/?limit=%d&offset=%d", limit, offset))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func debitCmd() *cobra.Command {
	var account, amount string

	cmd := &cobra.Command{
		Use:   "debit",
		Short: "Debit an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transactions/debit", map[string]any{
				"account_id": account,
				"amount":     amount,
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to debit")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func creditCmd() *cobra.Command {
	var account, amount string

	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Credit an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transactions/credit", map[string]any{
				"account_id": account,
				"amount":     amount,
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to credit")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func transferCmd() *cobra.Command {
	var from, to, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer between accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transactions/transfer", map[string]any{
				"from_account_id": from,
				"to_account_id":   to,
				"amount":          amount,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source account ID")
	cmd.Flags().StringVar(&to, "to", "", "Destination account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func eventsCmd() *cobra.Command {
	var (
		cursor int64
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Read the balance change event feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/events?cursor=%d&limit=%d", cursor, limit))
		},
	}

	cmd.Flags().Int64Var(&cursor, "cursor", 0, "Read events after this sequence")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum events to return")

	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		secret     string
		principal  string
		role       string
		expiration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("invalid role %q", role)
			}

			manager := auth.NewJWTManager(secret, expiration)
			token, err := manager.Generate(domain.Principal{ID: principal, Role: r})
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (must match the server)")
	cmd.Flags().StringVar(&principal, "principal", "", "Principal ID")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleMember), "Role: admin or member")
	cmd.Flags().DurationVar(&expiration, "expiration", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func getJSON(path string) error {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return err
	}

	return doRequest(req)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return doRequest(req)
}

func doRequest(req *http.Request) error {
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var pretty any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(pretty)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}

	fmt.Println(string(out))
}
