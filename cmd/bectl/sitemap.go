package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"brincareducando/internal/config"
	"brincareducando/internal/sitemap"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Gera o sitemap.xml a partir do conteúdo",
	Long: `Gera o sitemap.xml com as rotas fixas do site mais um registro por
post e por landing page, usando a data de modificação dos arquivos como
lastmod. O resultado vai para o diretório público servido pelo servidor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		out := filepath.Join(cfg.PublicDir, "sitemap.xml")
		err = sitemap.WriteFile(out,
			cfg.SiteURL,
			filepath.Join(cfg.ContentDir, "posts"),
			filepath.Join(cfg.ContentDir, "landings"),
		)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "sitemap gerado em", out)
		return nil
	},
}
