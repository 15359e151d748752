package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL  string
	tenantID string
	timeout  time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gocontas-cli",
		Short: "GoContas CLI tool",
		Long:  `A command line interface for interacting with the GoContas API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoContas API")
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant", "", "Tenant ID sent as X-Tenant-ID")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(cashFlowCmd())
	rootCmd.AddCommand(receivablesCmd())
	rootCmd.AddCommand(payablesCmd())
	rootCmd.AddCommand(settleCmd())
	rootCmd.AddCommand(dashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, status, err := doRequest(http.MethodGet, "/ready", nil)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("not ready (status %d): %s", status, body)
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func cashFlowCmd() *cobra.Command {
	var start, end, account string

	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Print the cash flow statement for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := buildPath("/api/v1/cash-flow", map[string]string{
				"start":           start,
				"end":             end,
				"cash_account_id": account,
			})
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&account, "account", "", "Cash account ID (default account when empty)")
	return cmd
}

func receivablesCmd() *cobra.Command {
	return obligationsReportCmd("receivables", "List receivables with total")
}

func payablesCmd() *cobra.Command {
	return obligationsReportCmd("payables", "List payables with total")
}

func obligationsReportCmd(name, short string) *cobra.Command {
	var dueFrom, dueTo, partyName, status string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := buildPath("/api/v1/"+name, map[string]string{
				"due_from":   dueFrom,
				"due_to":     dueTo,
				"party_name": partyName,
				"status":     status,
			})
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&dueFrom, "due-from", "", "Due date lower bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueTo, "due-to", "", "Due date upper bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&partyName, "party", "", "Filter by party name")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (PENDING, PAID, OVERDUE, CANCELLED)")
	return cmd
}

func settleCmd() *cobra.Command {
	var account, date string

	cmd := &cobra.Command{
		Use:   "settle <obligation-id>",
		Short: "Settle an obligation into a cash account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"cash_account_id": account,
				"payment_date":    date,
			}
			body, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			resp, status, err := doRequest(http.MethodPost, "/api/v1/obligations/"+args[0]+"/settle", body)
			if err != nil {
				return err
			}
			if status != http.StatusCreated {
				return fmt.Errorf("settlement failed (status %d): %s", status, resp)
			}

			var entry map[string]any
			if err := json.Unmarshal(resp, &entry); err != nil {
				return err
			}
			printJSON(entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Cash account ID to receive the entry")
	cmd.Flags().StringVar(&date, "date", "", "Payment date (YYYY-MM-DD, today when empty)")
	return cmd
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the tenant dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/dashboard")
		},
	}
}

func getJSON(path string) error {
	body, status, err := doRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", status, body)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return err
	}
	printJSON(result)
	return nil
}

func doRequest(method, path string, body []byte) ([]byte, int, error) {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(string(body))
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if tenantID != "" {
		req.Header.Set("X-Tenant-ID", tenantID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return data, resp.StatusCode, nil
}

func buildPath(path string, params map[string]string) string {
	q := url.Values{}
	for key, val := range params {
		if val != "" {
			q.Set(key, val)
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to encode output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
