// orderctl — терминальный клиент deal-desk: поиск по каталогу, сборка
// сделки из устройства, запчастей и услуг, отправка в CRM.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dealdesk/internal/client"
	"dealdesk/internal/domain"
	"dealdesk/pkg/listnav"
	"dealdesk/pkg/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	baseURL := os.Getenv("DEALDESK_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	api := client.NewClient(baseURL, nil)

	go api.RunSweeper(ctx, client.SweepInterval)

	app := &app{api: api}
	app.nav = listnav.New(app.pick).WithOnClose(func() { app.results = nil })

	if err := app.run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "orderctl:", err)
		os.Exit(1)
	}
}

type app struct {
	api     *client.Client
	nav     *listnav.Navigator[rest.Product]
	results []rest.Product

	category domain.Category
	draft    rest.DealRequest
	hasDev   bool
}

func (a *app) run(ctx context.Context) error {
	fmt.Println("commands: search <devices|parts|services> <query> | j/k/enter/esc | submit | reset | quit")

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "quit":
			return nil
		case line == "j":
			a.nav.HandleKey(listnav.KeyDown)
			a.render()
		case line == "k":
			a.nav.HandleKey(listnav.KeyUp)
			a.render()
		case line == "enter":
			a.nav.HandleKey(listnav.KeyEnter)
		case line == "esc":
			a.nav.HandleKey(listnav.KeyEscape)
		case line == "submit":
			a.submit(ctx)
		case line == "reset":
			a.draft = rest.DealRequest{}
			a.hasDev = false

			fmt.Println("selection cleared")
		case strings.HasPrefix(line, "search "):
			a.search(ctx, strings.TrimPrefix(line, "search "))
		default:
			if line != "" {
				fmt.Println("unknown command")
			}
		}
	}

	return scanner.Err()
}

func (a *app) search(ctx context.Context, args string) {
	fields := strings.SplitN(args, " ", 2)
	if len(fields) != 2 {
		fmt.Println("usage: search <devices|parts|services> <query>")
		return
	}

	category, err := domain.ParseCategory(fields[0])
	if err != nil {
		fmt.Println("unknown category:", fields[0])
		return
	}

	a.category = category
	a.results = a.api.Search(ctx, category, fields[1])
	a.nav.SetItems(a.results)

	if msg := a.api.Err(); msg != "" {
		fmt.Println("error:", msg)
		return
	}

	a.render()
}

func (a *app) render() {
	if len(a.results) == 0 {
		fmt.Println("no results")
		return
	}

	for i, p := range a.results {
		marker := "  "
		if i == a.nav.HighlightedIndex() {
			marker = "> "
		}

		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("%.2f", *p.Price)
		}

		fmt.Printf("%s%d. %s (%s)\n", marker, i+1, p.Name, price)
	}
}

func (a *app) pick(product rest.Product) {
	item := rest.DealItem{ProductID: product.ID, Quantity: 1}

	switch a.category {
	case domain.CategoryDevices:
		a.draft.Device = item
		a.hasDev = true
	case domain.CategoryParts:
		a.draft.Parts = append(a.draft.Parts, item)
	case domain.CategoryServices:
		a.draft.Services = append(a.draft.Services, item)
	}

	fmt.Printf("added %s\n", product.Name)
}

func (a *app) submit(ctx context.Context) {
	if !a.hasDev {
		fmt.Println("select a device first")
		return
	}

	result := a.api.CreateDeal(ctx, a.draft)
	if result == nil {
		fmt.Println("error:", a.api.Err())
		return
	}

	fmt.Printf("deal %d created: %s, %d rows, total %.2f\n",
		result.DealID, result.Title, result.RowsAdded, result.Total)

	a.draft = rest.DealRequest{}
	a.hasDev = false
}
