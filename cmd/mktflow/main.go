package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mktflow/ai"
	"mktflow/app"
	"mktflow/model"
	"mktflow/sheet"
	"mktflow/store"
	"mktflow/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var statePath string

	root := &cobra.Command{
		Use:   "mktflow",
		Short: "Calendario de contenido de marketing con campañas, deshacer y asistente",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(statePath)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&statePath, "state", defaultStatePath(), "ruta del archivo de estado")

	root.AddCommand(
		newImportCmd(&statePath),
		newExportCmd(&statePath),
		newCopyCmd(),
		newIdeasCmd(),
		newHashtagsCmd(),
		newClassifyCmd(),
		newProcessCmd(&statePath),
	)
	return root
}

func defaultStatePath() string {
	path, err := store.DefaultPath()
	if err != nil {
		return filepath.Join(".", ".mktflow", "state.json")
	}
	return path
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadService(statePath string, logger *zap.Logger) (*app.Service, string) {
	svc := app.NewService(statePath, logger)
	msg := svc.Load(model.InitialContent())
	return svc, msg
}

func runDashboard(statePath string) error {
	logger := newLogger()
	defer logger.Sync()

	svc, recovery := loadService(statePath, logger)
	program := tea.NewProgram(tui.NewModel(svc, recovery), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func newImportCmd(statePath *string) *cobra.Command {
	var campaign string

	cmd := &cobra.Command{
		Use:   "import ARCHIVO.xlsx",
		Short: "Importa contenido desde una hoja de cálculo a una vista",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, warnings, err := sheet.ImportFile(args[0])
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aviso:", w)
			}

			logger := newLogger()
			defer logger.Sync()
			svc, _ := loadService(*statePath, logger)

			if err := switchToView(svc, campaign); err != nil {
				return err
			}
			svc.SetContent(items)

			fmt.Fprintf(cmd.OutOrStdout(), "Importados %d contenidos en la vista %q\n", len(items), svc.ActiveView())
			return nil
		},
	}

	cmd.Flags().StringVar(&campaign, "campaign", "", "campaña destino (se crea si no existe; por defecto la vista general)")
	return cmd
}

// switchToView points the service at the requested campaign, creating it on
// first use. An empty name targets the general view.
func switchToView(svc *app.Service, campaign string) error {
	if campaign == "" {
		return svc.SetActiveView(model.GeneralView)
	}
	err := svc.AddCampaign(campaign)
	if err == app.ErrCampaignExists {
		return svc.SetActiveView(campaign)
	}
	return err
}

func newExportCmd(statePath *string) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "export ARCHIVO.xlsx",
		Short: "Exporta una vista a una hoja de cálculo con distribución y progreso",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()
			svc, _ := loadService(*statePath, logger)

			items := svc.Content()
			if view != "" {
				state := svc.State()
				if view == model.GeneralView {
					items = state.General
				} else {
					campaign, ok := state.Campaigns[view]
					if !ok {
						return fmt.Errorf("la campaña %q no existe", view)
					}
					items = campaign
				}
			}

			if err := sheet.ExportFile(args[0], items); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exportados %d contenidos a %s\n", len(items), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "vista a exportar (por defecto la vista activa)")
	return cmd
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy TÍTULO DESCRIPCIÓN",
		Short: "Genera variantes de copy listas para publicar",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			for _, variant := range ai.GenerateMarketingCopy(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "•", variant)
			}
		},
	}
}

func newIdeasCmd() *cobra.Command {
	var topic, trending, seasonal, keyword string

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Sugiere ideas de contenido",
		Run: func(cmd *cobra.Command, args []string) {
			for _, idea := range ai.SuggestContentIdeas(topic, trending, seasonal, keyword) {
				fmt.Fprintln(cmd.OutOrStdout(), "•", idea)
			}
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "tema principal")
	cmd.Flags().StringVar(&trending, "trending", "", "tendencias actuales")
	cmd.Flags().StringVar(&seasonal, "seasonal", "", "eventos de temporada")
	cmd.Flags().StringVar(&keyword, "keyword", "", "palabra clave")
	return cmd
}

func newHashtagsCmd() *cobra.Command {
	var keywords, location string

	cmd := &cobra.Command{
		Use:   "hashtags TEMA",
		Short: "Genera hashtags generales, de nicho y locales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := ai.GenerateHashtags(args[0], keywords, location)
			out, err := json.MarshalIndent(set, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&keywords, "keywords", "", "palabras clave separadas por comas")
	cmd.Flags().StringVar(&location, "location", "", "ubicación para hashtags locales")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify CONTENIDO RESTRICCIONES",
		Short: "Clasifica contenido y verifica restricciones vía LLM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := newFlows()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
			defer cancel()

			result, err := flows.ClassifyContent(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newProcessCmd(statePath *string) *cobra.Command {
	var campaign string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "process DATOS.json",
		Short: "Convierte filas crudas de hoja de cálculo en contenido vía LLM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			flows, err := newFlows()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
			defer cancel()

			items, err := flows.ProcessContent(ctx, string(raw))
			if err != nil {
				return err
			}

			if dryRun {
				out, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			logger := newLogger()
			defer logger.Sync()
			svc, _ := loadService(*statePath, logger)

			if err := switchToView(svc, campaign); err != nil {
				return err
			}
			svc.SetContent(items)

			fmt.Fprintf(cmd.OutOrStdout(), "Procesados %d contenidos en la vista %q\n", len(items), svc.ActiveView())
			return nil
		},
	}

	cmd.Flags().StringVar(&campaign, "campaign", "", "campaña destino (se crea si no existe)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "muestra el resultado sin guardarlo")
	return cmd
}

func newFlows() (*ai.Flows, error) {
	client, err := ai.NewOpenAIClient(ai.ClientConfigFromEnv())
	if err != nil {
		return nil, err
	}
	return ai.NewFlows(client), nil
}
