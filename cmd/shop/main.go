// Command shop is a minimal headless client for the catalog API: it loads
// the catalog into a session, optionally logs in, fills the cart from the
// command line and checks out. It exists to exercise the client/session
// stack outside of tests; the real consumer is a browser front-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"bellehair/internal/client"
	"bellehair/internal/config"
	"bellehair/internal/repository"
	"bellehair/internal/session"
)

type logNotifier struct{}

func (logNotifier) Success(msg string) { log.Printf("ok: %s", msg) }
func (logNotifier) Info(msg string)    { log.Printf("info: %s", msg) }
func (logNotifier) Error(msg string)   { log.Printf("error: %s", msg) }

func main() {
	var (
		email    = flag.String("email", "", "login email (optional)")
		password = flag.String("password", "", "login password")
		add      = flag.String("add", "", "comma-separated product ids to add to the cart")
		checkout = flag.Bool("checkout", false, "submit a card payment for the cart")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.FromEnv()

	var tokens client.TokenStore
	if cfg.TokenFile != "" {
		tokens = client.NewFileTokenStore(cfg.TokenFile)
	}
	api := client.New(cfg.APIBaseURL, tokens)
	sess := session.New(api, logNotifier{}, repository.SeedProducts())

	ctx := context.Background()
	if err := sess.LoadCatalog(ctx); err != nil {
		log.Printf("catalog unavailable, using bundled snapshot: %v", err)
	}
	fmt.Printf("%d products, %d featured\n", len(sess.Products()), len(sess.FeaturedProducts()))

	if *email != "" {
		if err := sess.Login(ctx, *email, *password); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	for _, id := range strings.Split(*add, ",") {
		if id = strings.TrimSpace(id); id != "" {
			sess.AddToCart(id)
		}
	}
	if n := sess.CartItemCount(); n > 0 {
		fmt.Printf("cart: %d items, total %.2f\n", n, sess.CartTotal())
	}

	if *checkout {
		res, err := sess.Checkout(ctx, "card", map[string]any{"cardNumber": "4111111111111111"})
		if err != nil {
			log.Fatalf("checkout failed: %v", err)
		}
		fmt.Printf("order %s confirmed, transaction %s\n", res.OrderID, res.TransactionID)
	}
}
