package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/cashledger/internal/infrastructure/logger"
	"github.com/iho/cashledger/internal/infrastructure/postgres"
)

// client talks to the ops HTTP surface.
type client struct {
	baseURL string
	actor   string
	http    *http.Client
}

func newRootCmd() *cobra.Command {
	c := &client{}
	var timeout time.Duration

	rootCmd := &cobra.Command{
		Use:           "cashledger",
		Short:         "cashledger operations CLI",
		Long:          `A command line interface for settlement jobs, master data and schema migrations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.http = &http.Client{Timeout: timeout}
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.baseURL, "url", "http://localhost:8080", "Base URL of the cashledger API")
	rootCmd.PersistentFlags().StringVar(&c.actor, "actor", "cli", "Actor ID recorded in the audit trail")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Request timeout")

	rootCmd.AddCommand(
		jobCmd(c),
		businessDayCmd(c),
		settingCmd(c),
		holidaysCmd(c),
		fiAccountCmd(c),
		selfFiAccountCmd(c),
		withdrawalsCmd(c),
		migrateCmd(),
	)
	return rootCmd
}

func jobCmd(c *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Trigger settlement jobs",
	}

	jobs := []struct {
		use, path, short string
	}{
		{"close-withdrawals", "close-withdrawals", "Process the withdrawal requests due today"},
		{"realize-cashflows", "realize-cashflows", "Realize the cashflows valued today"},
		{"advance-day", "advance-business-day", "Advance the business day"},
	}

	for _, j := range jobs {
		path := j.path
		cmd.AddCommand(&cobra.Command{
			Use:   j.use,
			Short: j.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				start := time.Now()
				if err := c.post("/api/v1/jobs/" + path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s completed in %s\n", path, time.Since(start).Round(time.Millisecond))
				return nil
			},
		})
	}

	return cmd
}

func businessDayCmd(c *client) *cobra.Command {
	return &cobra.Command{
		Use:   "business-day",
		Short: "Print the current business day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp struct {
				Day string `json:"day"`
			}
			if err := c.get("/api/v1/business-day", &resp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Day)
			return nil
		},
	}
}

func settingCmd(c *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Read or change application settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <id>",
			Short: "Print a setting value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var resp struct {
					Value string `json:"value"`
				}
				if err := c.get("/api/v1/settings/"+url.PathEscape(args[0]), &resp); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.Value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <id> <value>",
			Short: "Change a setting value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				body := map[string]string{"value": args[1]}
				if err := c.send(http.MethodPut, "/api/v1/settings/"+url.PathEscape(args[0]), body, nil); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], args[1])
				return nil
			},
		},
	)

	return cmd
}

func holidaysCmd(c *client) *cobra.Command {
	var (
		category string
		year     int
		days     []string
	)

	register := &cobra.Command{
		Use:   "register",
		Short: "Replace the holidays of one year",
		Long: `Replace every holiday of --year in --category. Each --day is
yyyy-MM-dd, optionally followed by =name.`,
		Example: `  cashledger holidays register --year 2026 --day 2026-01-01="New Year" --day 2026-05-05`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type item struct {
				Day  string `json:"day"`
				Name string `json:"name,omitempty"`
			}
			items := make([]item, 0, len(days))
			for _, d := range days {
				day, name, _ := strings.Cut(d, "=")
				items = append(items, item{Day: day, Name: name})
			}

			body := map[string]any{"category": category, "year": year, "items": items}
			if err := c.send(http.MethodPost, "/api/v1/holidays", body, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %d holidays for %d\n", len(items), year)
			return nil
		},
	}
	register.Flags().StringVar(&category, "category", "", "Holiday category (default category when empty)")
	register.Flags().IntVar(&year, "year", time.Now().Year(), "Year to replace")
	register.Flags().StringArrayVar(&days, "day", nil, "Holiday as yyyy-MM-dd[=name], repeatable")

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage the holiday calendar",
	}
	cmd.AddCommand(register)
	return cmd
}

// fiAccountFlags are shared by the fi-account and self-fi-account commands.
type fiAccountFlags struct {
	category    string
	currency    string
	fiCode      string
	fiAccountID string
}

func (f *fiAccountFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "Account category (cashOut when empty)")
	cmd.Flags().StringVar(&f.currency, "currency", "", "Currency code")
	cmd.Flags().StringVar(&f.fiCode, "fi-code", "", "Financial institution code")
	cmd.Flags().StringVar(&f.fiAccountID, "fi-account", "", "Account number at the institution")
	_ = cmd.MarkFlagRequired("currency")
}

func fiAccountCmd(c *client) *cobra.Command {
	var (
		accountID string
		flags     fiAccountFlags
	)

	register := &cobra.Command{
		Use:   "register",
		Short: "Register a customer's bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"account_id":    accountID,
				"category":      flags.category,
				"currency":      flags.currency,
				"fi_code":       flags.fiCode,
				"fi_account_id": flags.fiAccountID,
			}
			var resp struct {
				ID string `json:"id"`
			}
			if err := c.send(http.MethodPost, "/api/v1/fi-accounts", body, &resp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.ID)
			return nil
		},
	}
	register.Flags().StringVar(&accountID, "account", "", "Customer account ID")
	_ = register.MarkFlagRequired("account")
	flags.bind(register)

	cmd := &cobra.Command{
		Use:   "fi-account",
		Short: "Manage customer bank accounts",
	}
	cmd.AddCommand(register)
	return cmd
}

func selfFiAccountCmd(c *client) *cobra.Command {
	var flags fiAccountFlags

	register := &cobra.Command{
		Use:   "register",
		Short: "Register one of our own bank accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"category":      flags.category,
				"currency":      flags.currency,
				"fi_code":       flags.fiCode,
				"fi_account_id": flags.fiAccountID,
			}
			var resp struct {
				ID string `json:"id"`
			}
			if err := c.send(http.MethodPost, "/api/v1/self-fi-accounts", body, &resp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.ID)
			return nil
		},
	}
	flags.bind(register)

	cmd := &cobra.Command{
		Use:   "self-fi-account",
		Short: "Manage our own bank accounts",
	}
	cmd.AddCommand(register)
	return cmd
}

func withdrawalsCmd(c *client) *cobra.Command {
	var (
		currency, from, to string
		statuses           []string
		page, size         int
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List withdrawal requests, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			for key, val := range map[string]string{"currency": currency, "from": from, "to": to} {
				if val != "" {
					q.Set(key, val)
				}
			}
			if len(statuses) > 0 {
				q.Set("status", strings.Join(statuses, ","))
			}
			q.Set("page", strconv.Itoa(page))
			q.Set("size", strconv.Itoa(size))

			var resp struct {
				Items []struct {
					ID        string `json:"id"`
					AccountID string `json:"account_id"`
					Currency  string `json:"currency"`
					Amount    string `json:"amount"`
					EventDay  string `json:"event_day"`
					ValueDay  string `json:"value_day"`
					Status    string `json:"status"`
				} `json:"items"`
				Page  int   `json:"page"`
				Total int64 `json:"total"`
			}
			if err := c.get("/api/v1/withdrawals?"+q.Encode(), &resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range resp.Items {
				fmt.Fprintf(out, "%s\t%s\t%s %s\t%s\t%s\t%s\n", w.ID, w.AccountID, w.Amount, w.Currency, w.EventDay, w.ValueDay, w.Status)
			}
			fmt.Fprintf(out, "page %d, %d total\n", resp.Page, resp.Total)
			return nil
		},
	}
	list.Flags().StringVar(&currency, "currency", "", "Only this currency")
	list.Flags().StringSliceVar(&statuses, "status", nil, "Only these statuses")
	list.Flags().StringVar(&from, "from", "", "Updated on or after yyyy-MM-dd")
	list.Flags().StringVar(&to, "to", "", "Updated on or before yyyy-MM-dd")
	list.Flags().IntVar(&page, "page", 1, "Page number")
	list.Flags().IntVar(&size, "size", 20, "Page size")

	cmd := &cobra.Command{
		Use:   "withdrawals",
		Short: "Inspect withdrawal requests",
	}
	cmd.AddCommand(list)
	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL, path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	cmd.PersistentFlags().StringVar(&path, "path", "migrations", "Directory holding the migration files")

	newMigrator := func(cmd *cobra.Command) (*postgres.Migrator, error) {
		if databaseURL == "" {
			return nil, fmt.Errorf("--database-url or DATABASE_URL is required")
		}
		log := logger.New(logger.Config{Level: "info", Format: "console", Output: cmd.ErrOrStderr()})
		return postgres.NewMigrator(databaseURL, path, log), nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrator(cmd)
				if err != nil {
					return err
				}
				return m.Up()
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrator(cmd)
				if err != nil {
					return err
				}
				return m.Down()
			},
		},
	)

	return cmd
}

func (c *client) post(path string) error {
	return c.send(http.MethodPost, path, nil, nil)
}

func (c *client) get(path string, out any) error {
	return c.send(http.MethodGet, path, nil, out)
}

// send encodes in as the JSON body when set and decodes the response into
// out when set.
func (c *client) send(method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("X-Actor-ID", c.actor)
	req.Header.Set("X-Actor-Role", "internal")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s %s failed (status %d): %s", req.Method, req.URL.Path, resp.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}
