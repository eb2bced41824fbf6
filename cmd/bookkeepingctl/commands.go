package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/app"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the store schema up to date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := app.OpenStore(cmd.Context(), cfg, newLogger(), true)
		if err != nil {
			return err
		}
		store.Close()
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}

var ensureYearCmd = &cobra.Command{
	Use:   "ensure-year",
	Short: "Create the financial year covering today if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calendar, _ := cmd.Flags().GetString("calendar")
		return withServices(cmd, func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
			if calendar == "" {
				calendar = cfg.DefaultCalendar
			}
			fy, err := svc.FinancialYear.GetOrCreateCurrent(cmd.Context(), calendar)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToFinancialYearResponse(fy, cfg.CurrencyDecimals))
		})
	},
}

var closeYearCmd = &cobra.Command{
	Use:     "close-year <financial-year-id>",
	Short:   "Close a financial year",
	Example: "  bookkeepingctl close-year 4",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid financial year id %q", args[0])
		}
		return withServices(cmd, func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
			fy, err := svc.FinancialYear.CloseFinancialYear(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToFinancialYearResponse(fy, cfg.CurrencyDecimals))
		})
	},
}

var verifyChainCmd = &cobra.Command{
	Use:     "verify-chain <entity-type> <entity-id>",
	Short:   "Verify the audit hash chain of an entity",
	Example: "  bookkeepingctl verify-chain invoice 42",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
			result, err := svc.Audit.VerifyChain(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := printJSON(cmd, dto.ToVerifyChainResponse(args[0], args[1], result)); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("audit chain for %s %s is broken", args[0], args[1])
			}
			return nil
		})
	},
}

var trialBalanceCmd = &cobra.Command{
	Use:   "trial-balance",
	Short: "Print the trial balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOfStr, _ := cmd.Flags().GetString("as-of")
		return withServices(cmd, func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
			asOf := time.Now().In(cfg.Location)
			if asOfStr != "" {
				parsed, err := time.ParseInLocation("2006-01-02", asOfStr, cfg.Location)
				if err != nil {
					return fmt.Errorf("invalid as-of date format. Use YYYY-MM-DD: %w", err)
				}
				asOf = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			rows, err := svc.Reporting.TrialBalance(cmd.Context(), asOf)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToTrialBalanceResponse(rows, asOf, cfg.CurrencyDecimals))
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:     "token <subject>",
	Short:   "Mint a bearer token for the API",
	Example: "  bookkeepingctl token ops --ttl 24h",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ttl, _ := cmd.Flags().GetDuration("ttl")
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		token, err := utils.IssueAccessToken(args[0], cfg.JWTSecret, "bookkeepingctl", ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	ensureYearCmd.Flags().String("calendar", "", "Calendar to name the year in (gregorian or jalali)")
	trialBalanceCmd.Flags().String("as-of", "", "Report date (YYYY-MM-DD, default: now)")

	rootCmd.AddCommand(tokenCmd, migrateCmd, ensureYearCmd, closeYearCmd, verifyChainCmd, trialBalanceCmd)
}
