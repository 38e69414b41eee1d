package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"adminctl/internal/resources"
	"adminctl/pkg/api"
	"adminctl/pkg/models"
)

var (
	productSearch      string
	productPage        int
	productName        string
	productPrice       int64
	productDescription string
	productImage       string
	productYes         bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		products, err := client.Products().List(context.Background())
		if err != nil {
			er(fmt.Sprintf("Failed to fetch products: %v", err))
		}
		renderList(resources.Products(), products, productSearch, productPage, func(p models.Product) []string {
			return []string{
				fmt.Sprintf("Price: %d", p.Price),
				"Description: " + normalizeText(p.Description, "N/A"),
			}
		})
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid product id %q", args[0]))
		}
		p, err := client.Products().Get(context.Background(), id)
		if err != nil {
			er(fmt.Sprintf("Failed to fetch product: %v", err))
		}
		fmt.Printf("ID: %d\n", p.ID)
		fmt.Printf("Name: %s\n", normalizeText(p.Name, "N/A"))
		fmt.Printf("Price: %d\n", p.Price)
		fmt.Printf("Description: %s\n", normalizeText(p.Description, "N/A"))
		fmt.Printf("Image: %s\n", normalizeText(p.ImagePath, "N/A"))
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Run: func(cmd *cobra.Command, args []string) {
		if normalizeText(productName, "") == "" {
			er("Product name is required")
		}
		if productPrice < 0 {
			er("Price must be a non-negative number")
		}
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		ctx := context.Background()
		imagePath, err := uploadProductImage(ctx, client, productImage)
		if err != nil {
			er(fmt.Sprintf("Failed to upload image: %v", err))
		}
		p, err := client.Products().Create(ctx, models.CreateProduct{
			Name:        productName,
			Price:       productPrice,
			Description: productDescription,
			ImagePath:   imagePath,
		})
		if err != nil {
			er(fmt.Sprintf("Failed to create product: %v", err))
		}
		fmt.Printf("Created product %d (%s)\n", p.ID, p.Name)
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if normalizeText(productName, "") == "" {
			er("Product name is required")
		}
		if productPrice < 0 {
			er("Price must be a non-negative number")
		}
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid product id %q", args[0]))
		}
		ctx := context.Background()
		payload := models.UpdateProduct{
			Name:        &productName,
			Price:       &productPrice,
			Description: &productDescription,
		}
		imagePath, err := uploadProductImage(ctx, client, productImage)
		if err != nil {
			er(fmt.Sprintf("Failed to upload image: %v", err))
		}
		if imagePath != "" {
			payload.ImagePath = &imagePath
		}
		p, err := client.Products().Update(ctx, id, payload)
		if err != nil {
			er(fmt.Sprintf("Failed to update product: %v", err))
		}
		fmt.Printf("Updated product %d (%s)\n", p.ID, p.Name)
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid product id %q", args[0]))
		}
		if !productYes && !confirmPrompt(fmt.Sprintf("Delete product %d?", id)) {
			fmt.Println("Aborted")
			return
		}
		if err := client.Products().Delete(context.Background(), id); err != nil {
			er(fmt.Sprintf("Failed to delete product: %v", err))
		}
		fmt.Printf("Deleted product %d\n", id)
	},
}

// uploadProductImage runs the optional image upload before the resource
// payload is submitted, feeding the stored path into that payload.
func uploadProductImage(ctx context.Context, client *api.Client, localPath string) (string, error) {
	if localPath == "" {
		return "", nil
	}
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	stored, err := client.UploadSingle(ctx, filepath.Base(localPath), f)
	if err != nil {
		return "", err
	}
	return stored.Path, nil
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)

	productsListCmd.Flags().StringVar(&productSearch, "search", "", "Filter by name")
	productsListCmd.Flags().IntVar(&productPage, "page", 1, "Page number")
	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().Int64Var(&productPrice, "price", 0, "Price (non-negative)")
		c.Flags().StringVar(&productDescription, "description", "", "Product description")
		c.Flags().StringVar(&productImage, "image", "", "Local image file to upload")
	}
	productsDeleteCmd.Flags().BoolVar(&productYes, "yes", false, "Skip the confirmation prompt")
}
