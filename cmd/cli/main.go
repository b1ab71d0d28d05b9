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
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walletd-cli",
		Short: "walletd CLI tool",
		Long:  `A command line interface for the walletd wallet transfer API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the walletd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated APIs")

	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(partyCmd())
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func transferCmd() *cobra.Command {
	var (
		fromKind, fromID string
		toKind, toID     string
		amount, note     string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between two wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"sender":    map[string]string{"kind": fromKind, "id": fromID},
				"recipient": map[string]string{"kind": toKind, "id": toID},
				"amount":    amount,
				"note":      note,
			}

			return doRequest(http.MethodPost, "/api/v1/transfers/", body)
		},
	}

	cmd.Flags().StringVar(&fromKind, "from-kind", "admin", "Sender kind (admin, user, rider)")
	cmd.Flags().StringVar(&fromID, "from-id", "", "Sender ID")
	cmd.Flags().StringVar(&toKind, "to-kind", "", "Recipient kind (admin, user, rider)")
	cmd.Flags().StringVar(&toID, "to-id", "", "Recipient ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	cmd.MarkFlagRequired("from-id")
	cmd.MarkFlagRequired("to-kind")
	cmd.MarkFlagRequired("to-id")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func partyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Party operations",
	}

	getCmd := &cobra.Command{
		Use:   "get <kind> <id>",
		Short: "Show a party and its balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/%s", args[0], args[1]), nil)
		},
	}

	var (
		id, name string
		balance  string
	)
	createCmd := &cobra.Command{
		Use:   "create <kind>",
		Short: "Create a party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"id":              id,
				"name":            name,
				"opening_balance": balance,
			}
			return doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/", args[0]), body)
		},
	}
	createCmd.Flags().StringVar(&id, "id", "", "Party ID (generated when omitted)")
	createCmd.Flags().StringVar(&name, "name", "", "Party name")
	createCmd.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List parties of one kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/", args[0]), nil)
		},
	}

	cmd.AddCommand(getCmd, createCmd, listCmd)

	return cmd
}

func historyCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "history <kind> <id>",
		Short: "Show a party's transaction history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/parties/%s/%s/transactions?limit=%d&offset=%d",
				args[0], args[1], limit, offset)
			return doRequest(http.MethodGet, path, nil)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

// doRequest performs one API call and prints the JSON response.
func doRequest(method, path string, body any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, respBody)
	}

	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		fmt.Println(string(respBody))
		return nil
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(encoded))
}
