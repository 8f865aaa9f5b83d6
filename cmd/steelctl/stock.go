package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metforge/steelctl/internal/domain"
	"github.com/metforge/steelctl/internal/fieldschema"
)

var (
	stockBranchID    string
	productCategory  string
	productWeight    float64
	productLength    float64
	productPrice     float64
	productKgPrice   float64
	productStock     int
	productDiameter  int
	productFields    []string
	categoryName     string
	categoryTypeID   string
	categoryBranchID string
	categoryExtras   []string
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Manage products, categories and product types",
}

var stockProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the visible stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		products, err := application.API().Products()
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%-24s  çap %-4d  uzunluk %-8s  stok %-5d  %s TL\n",
				p.ID, p.Diameter,
				fieldschema.FormatValue(fieldschema.Decimal, p.Length),
				p.Stock,
				fieldschema.FormatValue(fieldschema.Decimal, p.PurchasePrice))
		}
		return nil
	},
}

var stockTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List product type templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		types, err := application.ProductTypes()
		if err != nil {
			return err
		}
		for _, t := range types {
			fmt.Printf("%-24s  %s\n", t.ID, t.Name)
			schema, err := fieldschema.SchemaFromWire(t.RequiredFields, nil)
			if err != nil {
				return err
			}
			for _, name := range schema.Names() {
				spec, _ := schema.Spec(name)
				fmt.Printf("    %s (%s, %s)\n", fieldschema.TranslateLabel(name), spec.Datatype, requiredLabel(spec.Required))
			}
		}
		return nil
	},
}

var stockCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List a branch's product categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		branchID := stockBranchID
		if branchID == "" {
			s, _ := application.Sessions().Current()
			branchID = s.BranchID
		}
		if branchID == "" {
			return fmt.Errorf("no branch selected, pass --branch")
		}
		categories, err := application.API().CategoriesByBranch(branchID)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%-24s  %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var stockCategoryCmd = &cobra.Command{
	Use:   "category <id>",
	Short: "Show one category, its field schema and products",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowCategory,
}

var stockCreateCategoryCmd = &cobra.Command{
	Use:   "create-category",
	Short: "Instantiate a product type for a branch",
	Long: `Creates a product category from a product type template. Extra
fields are given as name:datatype pairs, datatype one of text, integer or
decimal, for example --extra innerDiameter:integer.`,
	RunE: runCreateCategory,
}

var stockAddProductCmd = &cobra.Command{
	Use:   "add-product",
	Short: "Add a stock lot to a category",
	Long: `Adds a product. Dynamic field values are given as name=value pairs
and are validated against the category's field schema, for example
--field innerDiameter=16.`,
	RunE: runAddProduct,
}

var stockDeleteProductCmd = &cobra.Command{
	Use:   "delete-product <id>",
	Short: "Remove a stock lot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := application.API().DeleteProduct(args[0]); err != nil {
			return err
		}
		fmt.Println("Product deleted.")
		return nil
	},
}

func runShowCategory(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	cp, err := application.API().CategoryWithProducts(args[0])
	if err != nil {
		return err
	}

	schema, err := categorySchema(cp.ProductCategory)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", cp.ProductCategory.Name, cp.ProductCategory.ID)
	fmt.Println("Fields:")
	for _, name := range schema.Names() {
		spec, _ := schema.Spec(name)
		origin := "extra"
		if schema.IsTemplateField(name) {
			origin = "template"
		}
		fmt.Printf("  %-28s  %-8s  %-9s  %s\n",
			fieldschema.TranslateLabel(name), spec.Datatype, requiredLabel(spec.Required), origin)
	}

	fmt.Printf("Products (%d):\n", len(cp.Products))
	for _, p := range cp.Products {
		fmt.Printf("  %-24s  çap %-4d  stok %-5d", p.ID, p.Diameter, p.Stock)
		for _, name := range schema.Names() {
			if v, ok := p.Fields[name]; ok {
				spec, _ := schema.Spec(name)
				fmt.Printf("  %s=%s", name, fieldschema.FormatValue(spec.Datatype, v))
			}
		}
		fmt.Println()
	}
	return nil
}

func runCreateCategory(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	branchID := categoryBranchID
	if branchID == "" {
		s, _ := application.Sessions().Current()
		branchID = s.BranchID
	}
	if branchID == "" {
		return fmt.Errorf("no branch selected, pass --branch")
	}

	types, err := application.ProductTypes()
	if err != nil {
		return err
	}
	var template *domain.ProductType
	for i := range types {
		if types[i].ID == categoryTypeID || strings.EqualFold(types[i].Name, categoryTypeID) {
			template = &types[i]
			break
		}
	}
	if template == nil {
		return fmt.Errorf("product type %q not found", categoryTypeID)
	}

	schema, err := fieldschema.SchemaFromWire(template.RequiredFields, nil)
	if err != nil {
		return err
	}
	for _, pair := range categoryExtras {
		name, spec, err := parseExtraFlag(pair)
		if err != nil {
			return err
		}
		if err := schema.AddExtra(name, spec); err != nil {
			return err
		}
	}

	created, err := application.API().CreateCategory(domain.ProductCategory{
		Name:          categoryName,
		ProductTypeID: template.ID,
		BranchID:      branchID,
		FinalFields:   wireFields(schema),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created category %s (%s) with %d fields.\n", created.Name, created.ID, schema.Len())
	return nil
}

func runAddProduct(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	cp, err := application.API().CategoryWithProducts(productCategory)
	if err != nil {
		return err
	}
	schema, err := categorySchema(cp.ProductCategory)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	for _, pair := range productFields {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("field %q must be name=value", pair)
		}
		spec, ok := schema.Spec(name)
		if !ok {
			return fmt.Errorf("field %q is not part of the category schema", name)
		}
		parsed, err := fieldschema.ParseValue(spec.Datatype, value)
		if err != nil {
			return err
		}
		fields[name] = parsed
	}
	if err := schema.Validate(fields); err != nil {
		return err
	}

	created, err := application.API().CreateProduct(domain.Product{
		ProductCategoryID: cp.ProductCategory.ID,
		Weight:            productWeight,
		Length:            productLength,
		PurchasePrice:     productPrice,
		KgPrice:           productKgPrice,
		Stock:             productStock,
		Diameter:          productDiameter,
		Fields:            fields,
		IsActive:          true,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created product %s (kg fiyatı %s TL).\n",
		created.ID, fieldschema.FormatValue(fieldschema.Decimal, created.KgPrice))
	return nil
}

// categorySchema rebuilds the merged schema for a category: the template
// partition comes from the product type, the extras are the remaining
// finalFields entries.
func categorySchema(pc domain.ProductCategory) (*fieldschema.Schema, error) {
	types, err := application.ProductTypes()
	if err != nil {
		return nil, err
	}
	var templateFields map[string]interface{}
	for _, t := range types {
		if t.ID == pc.ProductTypeID {
			templateFields = t.RequiredFields
			break
		}
	}

	extras := map[string]interface{}{}
	template := fieldschema.NormalizeMap(fieldschema.FilterFixed(templateFields), true)
	for name, raw := range pc.FinalFields {
		if _, fromTemplate := template[name]; !fromTemplate {
			extras[name] = raw
		}
	}
	return fieldschema.SchemaFromWire(templateFields, extras)
}

func parseExtraFlag(pair string) (string, fieldschema.FieldSpec, error) {
	name, datatype, found := strings.Cut(pair, ":")
	if !found {
		return "", fieldschema.FieldSpec{}, fmt.Errorf("extra field %q must be name:datatype", pair)
	}
	var dt fieldschema.DataType
	switch datatype {
	case "text":
		dt = fieldschema.Text
	case "integer":
		dt = fieldschema.Integer
	case "decimal":
		dt = fieldschema.Decimal
	default:
		return "", fieldschema.FieldSpec{}, fmt.Errorf("datatype %q must be text, integer or decimal", datatype)
	}
	return name, fieldschema.FieldSpec{Datatype: dt}, nil
}

func wireFields(schema *fieldschema.Schema) map[string]interface{} {
	out := map[string]interface{}{}
	for name, spec := range schema.Wire() {
		out[name] = map[string]interface{}{
			"datatype": spec.Datatype.Wire(),
			"required": spec.Required,
		}
	}
	return out
}

func requiredLabel(required bool) string {
	return map[bool]string{true: "required", false: "optional"}[required]
}

func init() {
	stockCategoriesCmd.Flags().StringVarP(&stockBranchID, "branch", "b", "", "branch id (defaults to the session branch)")

	stockCreateCategoryCmd.Flags().StringVarP(&categoryName, "name", "n", "", "category name (required)")
	stockCreateCategoryCmd.Flags().StringVarP(&categoryTypeID, "type", "t", "", "product type id or name (required)")
	stockCreateCategoryCmd.Flags().StringVarP(&categoryBranchID, "branch", "b", "", "branch id (defaults to the session branch)")
	stockCreateCategoryCmd.Flags().StringArrayVarP(&categoryExtras, "extra", "e", nil, "extra field as name:datatype, repeatable")
	stockCreateCategoryCmd.MarkFlagRequired("name")
	stockCreateCategoryCmd.MarkFlagRequired("type")

	stockAddProductCmd.Flags().StringVarP(&productCategory, "category", "c", "", "category id (required)")
	stockAddProductCmd.Flags().Float64Var(&productWeight, "weight", 0, "unit weight in kg")
	stockAddProductCmd.Flags().Float64Var(&productLength, "length", 0, "unit length in mm")
	stockAddProductCmd.Flags().Float64Var(&productPrice, "price", 0, "total purchase price")
	stockAddProductCmd.Flags().Float64Var(&productKgPrice, "kg-price", 0, "price per kg (alternative to --price)")
	stockAddProductCmd.Flags().IntVar(&productStock, "stock", 0, "unit count")
	stockAddProductCmd.Flags().IntVar(&productDiameter, "diameter", 0, "diameter in mm")
	stockAddProductCmd.Flags().StringArrayVarP(&productFields, "field", "f", nil, "dynamic field as name=value, repeatable")
	stockAddProductCmd.MarkFlagRequired("category")

	stockCmd.AddCommand(stockProductsCmd)
	stockCmd.AddCommand(stockTypesCmd)
	stockCmd.AddCommand(stockCategoriesCmd)
	stockCmd.AddCommand(stockCategoryCmd)
	stockCmd.AddCommand(stockCreateCategoryCmd)
	stockCmd.AddCommand(stockAddProductCmd)
	stockCmd.AddCommand(stockDeleteProductCmd)
}
