package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"brincareducando/internal/catalog"
	"brincareducando/internal/extractor"
	"brincareducando/internal/models"
	"brincareducando/internal/slug"
)

var extrairComoJSON bool

var extrairCmd = &cobra.Command{
	Use:   "extrair <url>",
	Short: "Extrai dados de uma página de produto",
	Long: `Extrai título, imagem, descrição e categoria de uma página de produto
da Amazon ou do Mercado Livre. Por padrão imprime os campos lidos;
com --json imprime um rascunho de produto pronto para revisão e
importação com "bectl produto import".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]

		data, err := extractor.New().Extract(url)
		if err != nil {
			return err
		}

		if extrairComoJSON {
			draft := draftProduct(data)
			out, err := json.MarshalIndent([]models.Product{draft}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "título:    ", data.Title)
		fmt.Fprintln(cmd.OutOrStdout(), "imagem:    ", data.Image)
		fmt.Fprintln(cmd.OutOrStdout(), "descrição: ", data.Description)
		fmt.Fprintln(cmd.OutOrStdout(), "categoria: ", data.Category)
		fmt.Fprintln(cmd.OutOrStdout(), "fonte:     ", catalog.DetectSource(url))
		return nil
	},
}

func init() {
	extrairCmd.Flags().BoolVar(&extrairComoJSON, "json", false, "imprime um rascunho de produto em JSON")
}

// draftProduct turns scraped page data into a catalog record draft. The
// category comes through slugified; empty fields stay empty for the
// operator to fill in.
func draftProduct(data *extractor.ProductData) models.Product {
	s := slug.Generate(data.Title)

	var categories []string
	if data.Category != "" {
		categories = []string{slug.Generate(data.Category)}
	}

	return models.Product{
		ID:          s,
		Slug:        s,
		Title:       data.Title,
		Description: data.Description,
		Categories:  categories,
		Image:       data.Image,
		Link:        data.URL,
		Source:      catalog.DetectSource(data.URL),
	}
}
