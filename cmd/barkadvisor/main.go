// @title       Bark Advisor API
// @version     1.0
// @description Dog profile API behind the Bark Advisor dashboard.
// @BasePath    /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barkadvisor",
	Short: "Bark Advisor web app",
	Long: `Bark Advisor: perfiles de perros y recomendaciones de productos.

Subcomandos:
  serve   - levanta el servidor HTTP (páginas + API JSON)
  migrate - aplica el schema de Postgres (requiere DB_DSN)
  token   - emite un token de sesión firmado con JWT_SECRET`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
