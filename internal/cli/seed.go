package cli

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	File string
}

// Catalog is the seed file layout. Prices are strings so they survive YAML
// without float rounding.
type Catalog struct {
	Categories []entity.Category `yaml:"categories"`
	Products   []SeedProduct     `yaml:"products"`
}

type SeedProduct struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	RegularPrice  string  `yaml:"regularPrice"`
	SalePrice     string  `yaml:"salePrice"`
	StockQuantity int     `yaml:"stockQuantity"`
	Variants      *string `yaml:"variants"`
	CategoryID    string  `yaml:"categoryId"`
	ImageURL      string  `yaml:"imageUrl"`
	ImageHint     string  `yaml:"imageHint"`
}

// SeedResult reports what the seed wrote.
type SeedResult struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert categories and products from a YAML catalog",
		Long: `Upsert every category and product in the catalog file. Products with an
id are written under that id, so seeding twice is safe; products without one
are created under a new id.

Examples:
  shopctl seed --file config/catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "path to the catalog YAML (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// LoadCatalog reads and parses a seed file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return &catalog, nil
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	catalog, err := LoadCatalog(opts.File)
	if err != nil {
		return err
	}

	inputs := make([]*usecase.ProductInput, 0, len(catalog.Products))
	for i, product := range catalog.Products {
		input, err := product.toInput()
		if err != nil {
			return errors.Wrapf(err, "product %d (%s)", i, product.Title)
		}
		inputs = append(inputs, input)
	}

	var result SeedResult
	err = opts.withRuntime(cmd.Context(), func(rt *Runtime) error {
		return seedCatalog(cmd.Context(), rt.Admin, catalog.Categories, inputs, &result)
	})
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories and %d products\n", result.Categories, result.Products)

	return nil
}

func seedCatalog(ctx context.Context, admin usecase.AdminUsecase, categories []entity.Category, products []*usecase.ProductInput, result *SeedResult) error {
	for _, category := range categories {
		if err := admin.UpsertCategory(ctx, &category); err != nil {
			return errors.Wrapf(err, "category %s", category.ID)
		}
		result.Categories++
	}

	for _, input := range products {
		var err error
		if input.ID != "" {
			_, err = admin.UpsertProduct(ctx, input)
		} else {
			_, err = admin.CreateProduct(ctx, input)
		}
		if err != nil {
			return errors.Wrapf(err, "product %s", input.Title)
		}
		result.Products++
	}

	return nil
}

func (p SeedProduct) toInput() (*usecase.ProductInput, error) {
	regular, err := decimal.NewFromString(p.RegularPrice)
	if err != nil {
		return nil, errors.Wrap(err, "regularPrice")
	}

	input := &usecase.ProductInput{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		RegularPrice:  regular,
		StockQuantity: p.StockQuantity,
		Variants:      p.Variants,
		CategoryID:    p.CategoryID,
		ImageURL:      p.ImageURL,
		ImageHint:     p.ImageHint,
	}
	if p.SalePrice != "" {
		sale, err := decimal.NewFromString(p.SalePrice)
		if err != nil {
			return nil, errors.Wrap(err, "salePrice")
		}
		input.SalePrice = &sale
	}

	return input, nil
}
