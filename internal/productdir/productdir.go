package productdir

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client defines the interface for resolving products against the external
// product directory. This interface enables dependency injection and testing
// with mock implementations.
type Client interface {
	GetProduct(ctx context.Context, id string) (Product, error)
}

// DirectoryClient provides methods for fetching product data from the product
// directory service. It wraps an HTTP client and authenticates every request
// with basic authentication.
type DirectoryClient struct {
	httpClient *http.Client
	baseURL    string
	user       string
	password   string
}

// NewDirectoryClient creates a new product directory client.
//
// Parameters:
//   - baseURL: API root, e.g. "https://product-service.herokuapp.com/api/v1"
//   - user, password: basic auth credentials for the directory
func NewDirectoryClient(baseURL, user, password string) *DirectoryClient {
	return &DirectoryClient{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		user:       user,
		password:   password,
	}
}

// GetProduct fetches a single product by its ID.
//
// Returns:
//   - Product: the directory's product record including its base-currency price
//   - error: if the HTTP request fails, the product does not exist, or the
//     response cannot be parsed
func (c *DirectoryClient) GetProduct(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product id is required")
	}

	reqURL := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Product{}, err
	}

	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Product{}, fmt.Errorf("product %s not found in directory", id)
	}
	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("product directory returned status %d for product %s", resp.StatusCode, id)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return Product{}, err
	}

	return product, nil
}
