package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"brincareducando/internal/catalog"
	"brincareducando/internal/config"
	"brincareducando/internal/models"
	"brincareducando/internal/slug"
)

var produtoCmd = &cobra.Command{
	Use:   "produto",
	Short: "Gerencia os arquivos JSON do catálogo",
}

var (
	produtoTitulo     string
	produtoLink       string
	produtoImagem     string
	produtoPreco      string
	produtoResumo     string
	produtoDescricao  string
	produtoCategorias []string
	produtoDestaque   bool
)

var produtoNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Cria um produto no catálogo",
	Long: `Cria o arquivo JSON de um produto em produtos/ e o registra no
index.json. O slug vem do título e a loja de origem é detectada pelo
domínio do link (Amazon, Mercado Livre ou Outro).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		p := buildProduct(produtoTitulo, produtoLink, produtoImagem, produtoPreco,
			produtoResumo, produtoDescricao, produtoCategorias, produtoDestaque)
		if err := validateProduct(p); err != nil {
			return err
		}

		dir := filepath.Join(cfg.ContentDir, "produtos")
		if err := writeProducts(dir, []models.Product{p}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "produto %q criado (%s, fonte: %s)\n", p.Title, p.Slug, p.Source)
		return nil
	},
}

var produtoImportCmd = &cobra.Command{
	Use:   "import <arquivo.json>",
	Short: "Importa produtos em lote",
	Long: `Importa um arquivo JSON com uma lista de produtos. A lista inteira é
validada antes de qualquer escrita: um registro inválido cancela a
importação completa, nada é aplicado pela metade.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("ler %s: %w", args[0], err)
		}

		var batch []models.Product
		if err := json.Unmarshal(raw, &batch); err != nil {
			return fmt.Errorf("JSON inválido em %s: %w", args[0], err)
		}
		if len(batch) == 0 {
			return fmt.Errorf("%s não contém produtos", args[0])
		}

		for i := range batch {
			batch[i] = normalizeProduct(batch[i])
			if err := validateProduct(batch[i]); err != nil {
				return fmt.Errorf("produto %d: %w", i+1, err)
			}
		}

		dir := filepath.Join(cfg.ContentDir, "produtos")
		if err := writeProducts(dir, batch); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d produtos importados\n", len(batch))
		return nil
	},
}

func init() {
	produtoNewCmd.Flags().StringVar(&produtoTitulo, "titulo", "", "título do produto")
	produtoNewCmd.Flags().StringVar(&produtoLink, "link", "", "link da loja parceira")
	produtoNewCmd.Flags().StringVar(&produtoImagem, "imagem", "", "URL da imagem")
	produtoNewCmd.Flags().StringVar(&produtoPreco, "preco", "", "preço exibido (informativo)")
	produtoNewCmd.Flags().StringVar(&produtoResumo, "resumo", "", "resumo curto para os cards")
	produtoNewCmd.Flags().StringVar(&produtoDescricao, "descricao", "", "descrição completa")
	produtoNewCmd.Flags().StringSliceVar(&produtoCategorias, "categorias", nil, "slugs de categoria")
	produtoNewCmd.Flags().BoolVar(&produtoDestaque, "destaque", false, "entra no carrossel de destaques")
	produtoNewCmd.MarkFlagRequired("titulo")
	produtoNewCmd.MarkFlagRequired("link")

	produtoCmd.AddCommand(produtoNewCmd)
	produtoCmd.AddCommand(produtoImportCmd)
}

// buildProduct assembles a catalog record from raw field values.
func buildProduct(titulo, link, imagem, preco, resumo, descricao string, categorias []string, destaque bool) models.Product {
	s := slug.Generate(titulo)
	return models.Product{
		ID:          s,
		Slug:        s,
		Title:       strings.TrimSpace(titulo),
		Excerpt:     strings.TrimSpace(resumo),
		Description: strings.TrimSpace(descricao),
		Categories:  categorias,
		Image:       imagem,
		Link:        link,
		Price:       preco,
		Featured:    destaque,
		Source:      catalog.DetectSource(link),
	}
}

// normalizeProduct fills the derivable fields of an imported record.
func normalizeProduct(p models.Product) models.Product {
	p.Title = strings.TrimSpace(p.Title)
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if p.ID == "" {
		p.ID = p.Slug
	}
	if p.Source == "" {
		p.Source = catalog.DetectSource(p.Link)
	}
	return p
}

// validateProduct rejects records the storefront could not display.
func validateProduct(p models.Product) error {
	if p.Title == "" {
		return fmt.Errorf("título é obrigatório")
	}
	if p.Link == "" {
		return fmt.Errorf("link é obrigatório")
	}
	return nil
}

// writeProducts writes each product to <slug>.json in dir and registers
// the files in index.json. All file contents are marshaled before the
// first write, so a marshal failure aborts with nothing applied.
func writeProducts(dir string, batch []models.Product) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("criar %s: %w", dir, err)
	}

	type pending struct {
		path string
		data []byte
	}
	files := make([]pending, 0, len(batch))
	for _, p := range batch {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("produto %q: %w", p.Title, err)
		}
		files = append(files, pending{
			path: filepath.Join(dir, p.Slug+".json"),
			data: append(data, '\n'),
		})
	}

	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			return fmt.Errorf("gravar %s: %w", f.path, err)
		}
	}

	names := make([]string, len(batch))
	for i, p := range batch {
		names[i] = p.Slug + ".json"
	}
	return updateManifest(dir, names)
}

// updateManifest merges names into the index.json listing, keeping it
// sorted and free of duplicates. A missing manifest starts empty.
func updateManifest(dir string, names []string) error {
	manifestPath := filepath.Join(dir, "index.json")

	var files []string
	if raw, err := os.ReadFile(manifestPath); err == nil {
		if err := json.Unmarshal(raw, &files); err != nil {
			return fmt.Errorf("index.json inválido: %w", err)
		}
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f] = true
	}
	for _, name := range names {
		if !seen[name] {
			files = append(files, name)
			seen[name] = true
		}
	}
	sort.Strings(files)

	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return fmt.Errorf("index.json: %w", err)
	}
	return os.WriteFile(manifestPath, append(data, '\n'), 0o644)
}
