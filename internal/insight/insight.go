// Package insight wraps the Gemini text-generation collaborator. It reads a
// snapshot of products and sales and returns a narrative string; it never
// touches catalog, ledger or cart state.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	salesdomain "github.com/kelompok6/retail-pos/internal/sales/domain"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// FallbackMessage is returned whenever generation fails. Purely advisory, so
// a failure is shown as-is instead of propagating an error.
const FallbackMessage = "Maaf, sistem AI sedang sibuk. Silakan coba lagi nanti."

const defaultModel = "gemini-3-flash-preview"

// Service generates business insights from retail snapshots.
type Service struct {
	client *genai.Client
	model  string
}

// NewService initializes the Gemini client. Credentials come from the
// environment (GEMINI_API_KEY / GOOGLE_API_KEY).
func NewService(ctx context.Context) (*Service, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &Service{client: client, model: defaultModel}, nil
}

// BusinessInsights asks the model for 3-4 actionable insights over the given
// snapshot. On any error the fixed fallback string is returned.
func (s *Service) BusinessInsights(ctx context.Context, products []catalogdomain.Product, sales []salesdomain.Sale) string {
	prompt := buildPrompt(products, sales)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Gemini insight request failed")
		return FallbackMessage
	}

	text := resp.Text()
	if text == "" {
		logger.Warn(ctx).Msg("Gemini returned an empty insight")
		return FallbackMessage
	}
	return text
}

func buildPrompt(products []catalogdomain.Product, sales []salesdomain.Sale) string {
	var inventory strings.Builder
	for _, p := range products {
		fmt.Fprintf(&inventory, "- %s: stock %d (min %d), hpp %s, harga jual %s\n",
			p.Name, p.Stock, p.MinStock, p.CostPrice.String(), p.SellingPrice.String())
	}

	revenue := decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.TotalAmount)
	}

	return fmt.Sprintf(`Analyze the following retail data and provide 3-4 actionable business insights.
Products:
%s
Recent Sales Summary: Total Sales Count: %d, Total Revenue: %s

Focus on:
1. Low stock warnings.
2. Most profitable products (HPP vs Selling Price).
3. Potential sales trends or recommendations for improvement.

Format the output as a clean bulleted list in Indonesian.`,
		inventory.String(), len(sales), revenue.String())
}
