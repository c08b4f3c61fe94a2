// nexarkctl drives the NexARK platform API from the terminal: Steam login,
// shop browsing, purchases, gifts and credits.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sayhighz/nexark-platform/client"
	"github.com/sayhighz/nexark-platform/client/flow"
	"github.com/sayhighz/nexark-platform/model"
)

const usage = `usage: nexarkctl <command> [flags]

commands:
  login               print the Steam login URL, then paste the callback URL
  logout              drop the current session
  profile             show the authenticated user
  items               list shop items
  item <id>           show one item
  buy <id>            buy an item
  gift <id>           gift an item to a SteamID
  balance             show credit balance
  topup <amount>      start a credits top-up
  history             list credit transactions
  servers             list game servers
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	api, err := newClient()
	if err != nil {
		fatal(err)
	}
	api.OnUnauthorized(func() {
		fmt.Fprintln(os.Stderr, "session expired, please run: nexarkctl login")
	})

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "login":
		err = runLogin(ctx, api)
	case "logout":
		api.Logout(ctx)
		fmt.Println("logged out")
	case "profile":
		err = runProfile(ctx, api)
	case "items":
		err = runItems(ctx, api, args)
	case "item":
		err = runItem(ctx, api, args)
	case "buy":
		err = runBuy(ctx, api, args)
	case "gift":
		err = runGift(ctx, api, args)
	case "balance":
		err = runBalance(ctx, api)
	case "topup":
		err = runTopup(ctx, api, args)
	case "history":
		err = runHistory(ctx, api)
	case "servers":
		err = runServers(ctx, api)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fatal(err)
	}
}

func newClient() (*client.Client, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	session, err := client.NewFileSessionStore(filepath.Join(configDir, "nexark"))
	if err != nil {
		return nil, err
	}

	return client.New(client.Config{
		BaseURL: os.Getenv("NEXARK_API_URL"),
		Lang:    os.Getenv("NEXARK_LANG"),
		Session: session,
	}), nil
}

// terminalNotifier renders flow notifications on stdout/stderr.
type terminalNotifier struct{}

func (terminalNotifier) Notify(severity flow.Severity, message string) {
	if severity == flow.SeveritySuccess {
		fmt.Println(message)
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", severity, message)
}

func (terminalNotifier) ShowSuccessModal(message string) {
	fmt.Println(message)
}

func (terminalNotifier) PromptLogin() {
	fmt.Fprintln(os.Stderr, "not logged in, please run: nexarkctl login")
}

// terminalConfirmer asks y/n on stdin.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func runLogin(ctx context.Context, api *client.Client) error {
	loginURL, err := api.SteamLoginURL(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Open in a browser and sign in through Steam:")
	fmt.Println("  " + loginURL.LoginURL)
	fmt.Print("Paste the callback URL you were redirected to: ")

	raw, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return err
	}
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}

	res, err := api.SteamCallback(ctx, parsed.Query())
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", res.User.PersonaName, res.User.SteamID)
	return nil
}

func runProfile(ctx context.Context, api *client.Client) error {
	res, err := api.Profile(ctx)
	if err != nil {
		return err
	}

	u := res.User
	fmt.Printf("%s (%s)\ncredits: ฿%.2f\n", u.PersonaName, u.SteamID, u.Credits)
	return nil
}

func runItems(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("items", flag.ExitOnError)
	category := fs.Uint64("category", 0, "category id filter")
	page := fs.Int("page", 1, "page")
	_ = fs.Parse(args)

	res, err := api.Items(ctx, &client.ItemsQuery{CategoryID: *category, Page: *page})
	if err != nil {
		return err
	}

	for _, item := range res.Items {
		stock := "unlimited"
		if item.Stock >= 0 {
			stock = strconv.FormatInt(item.Stock, 10)
		}
		fmt.Printf("%4d  ฿%8.2f  [%-9s]  stock=%-9s  %s\n", item.ID, item.Price, item.Rarity, stock, item.Name)
	}
	fmt.Printf("page %d of %d items\n", res.Page, res.TotalCount)
	return nil
}

func runItem(ctx context.Context, api *client.Client, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}

	res, err := api.Item(ctx, id)
	if err != nil {
		return err
	}

	item := res.Item
	fmt.Printf("%s  ฿%.2f  [%s]\n%s\n", item.Name, item.Price, item.Rarity, item.Description)
	return nil
}

func runBuy(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	serverID := fs.Uint64("server", 0, "target server id")
	if len(args) < 1 {
		return fmt.Errorf("usage: nexarkctl buy <item-id> [-server id]")
	}
	_ = fs.Parse(args[1:])

	id, err := argID(args)
	if err != nil {
		return err
	}

	item, err := api.Item(ctx, id)
	if err != nil {
		return err
	}

	controller := flow.NewPurchaseController(api, terminalNotifier{}, terminalConfirmer{})
	controller.Buy(ctx, item.Item, optionalID(*serverID))
	return nil
}

func runGift(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("gift", flag.ExitOnError)
	recipient := fs.String("to", "", "recipient SteamID (17 digits)")
	confirm := fs.String("confirm", "", "recipient SteamID again")
	serverID := fs.Uint64("server", 0, "target server id")
	if len(args) < 1 {
		return fmt.Errorf("usage: nexarkctl gift <item-id> -to <steamid> -confirm <steamid> [-server id]")
	}
	_ = fs.Parse(args[1:])

	id, err := argID(args)
	if err != nil {
		return err
	}

	item, err := api.Item(ctx, id)
	if err != nil {
		return err
	}

	controller := flow.NewGiftController(api, terminalNotifier{}, terminalConfirmer{})
	controller.Gift(ctx, item.Item, &flow.GiftForm{
		RecipientSteamID: *recipient,
		ConfirmSteamID:   *confirm,
		ServerID:         optionalID(*serverID),
	})
	return nil
}

func runBalance(ctx context.Context, api *client.Client) error {
	res, err := api.Balance(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("฿%.2f\n", res.Credits)
	return nil
}

func runTopup(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("topup", flag.ExitOnError)
	method := fs.String("method", "promptpay", "payment method")
	if len(args) < 1 {
		return fmt.Errorf("usage: nexarkctl topup <amount> [-method name]")
	}
	_ = fs.Parse(args[1:])

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	res, err := api.Topup(ctx, &model.TopupRequest{
		Amount:        amount,
		Currency:      "THB",
		PaymentMethod: *method,
	})
	if err != nil {
		return err
	}

	fmt.Println("Complete the payment at:")
	fmt.Println("  " + res.CheckoutURL)
	return nil
}

func runHistory(ctx context.Context, api *client.Client) error {
	res, err := api.CreditHistory(ctx, 1, 20)
	if err != nil {
		return err
	}

	for _, t := range res.Transactions {
		fmt.Printf("%s  %+9.2f  balance=%9.2f  %s#%d\n",
			t.CreatedAt.Format("2006-01-02 15:04"), t.Amount, t.BalanceAfter, t.RefType, t.RefID)
	}
	return nil
}

func runServers(ctx context.Context, api *client.Client) error {
	res, err := api.Servers(ctx)
	if err != nil {
		return err
	}

	for _, s := range res.Servers {
		status := "status unknown"
		if s.Status != nil {
			if s.Status.Online {
				status = fmt.Sprintf("online, %d/%d players", s.Status.PlayersOnline, s.MaxPlayers)
			} else {
				status = "offline"
			}
		}
		fmt.Printf("%4d  %-24s  %-16s  %s\n", s.ID, s.Name, s.MapName, status)
	}
	return nil
}

func argID(args []string) (uint64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func optionalID(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
