// Package main implements bectl, the content tooling for Brincar
// Educando: sitemap generation, product JSON management and product
// page extraction.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bectl",
	Short: "Ferramentas de conteúdo do Brincar Educando",
	Long: `bectl reúne as tarefas de manutenção do site que rodam fora do
servidor: gerar o sitemap, criar e importar produtos do catálogo e
extrair dados de páginas de lojas parceiras.`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(sitemapCmd)
	rootCmd.AddCommand(produtoCmd)
	rootCmd.AddCommand(extrairCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
