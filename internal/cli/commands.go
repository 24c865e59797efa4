package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/snnyvrz/shelfshare/internal/catalog"
)

type profile struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Slug           string  `json:"slug"`
	City           string  `json:"city"`
	DepositBalance float64 `json:"depositBalance"`
}

type wallet struct {
	Balance float64 `json:"balance"`
}

type inventoryItem struct {
	Book struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"book"`
	TotalCopies     int  `json:"totalCopies"`
	AvailableCopies int  `json:"availableCopies"`
	IsAvailable     bool `json:"isAvailable"`
}

func newLoginCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials for --email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged in as %s <%s>\n", p.Name, p.Email)
			return nil
		},
	}
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.PostJSON(cmd.Context(), a.authBase()+"/logout", nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func newMeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account behind --email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.login(cmd.Context()); err != nil {
				return err
			}

			var p profile
			if err := a.client.GetJSON(cmd.Context(), a.authBase()+"/me", nil, &p); err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ID\t%s\n", p.ID)
			fmt.Fprintf(w, "Name\t%s\n", p.Name)
			fmt.Fprintf(w, "Email\t%s\n", p.Email)
			if a.library {
				fmt.Fprintf(w, "Slug\t%s\n", p.Slug)
				fmt.Fprintf(w, "City\t%s\n", p.City)
			} else {
				fmt.Fprintf(w, "Balance\t%.2f\n", p.DepositBalance)
			}
			return w.Flush()
		},
	}
}

type bookFilters struct {
	search       string
	minPrice     float64
	maxPrice     float64
	genres       []string
	languages    []string
	conditions   []string
	location     string
	pincode      string
	city         string
	availableNow bool
	sortBy       string
	page         int
	limit        int
}

// query only sends the flags the user set, so server defaults apply.
func (f *bookFilters) query(cmd *cobra.Command) url.Values {
	q := url.Values{}
	set := func(name, key, value string) {
		if cmd.Flags().Changed(name) {
			q.Set(key, value)
		}
	}
	float := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	set("search", "search", f.search)
	set("min-price", "minPrice", float(f.minPrice))
	set("max-price", "maxPrice", float(f.maxPrice))
	set("location", "location", f.location)
	set("pincode", "pincode", f.pincode)
	set("city", "city", f.city)
	set("available-now", "availableNow", strconv.FormatBool(f.availableNow))
	set("sort", "sortBy", f.sortBy)
	set("page", "page", strconv.Itoa(f.page))
	set("limit", "limit", strconv.Itoa(f.limit))

	for _, g := range f.genres {
		q.Add("genre", g)
	}
	for _, l := range f.languages {
		q.Add("language", l)
	}
	for _, c := range f.conditions {
		q.Add("condition", c)
	}
	return q
}

func newBooksCommand(a *app) *cobra.Command {
	books := &cobra.Command{
		Use:   "books",
		Short: "Browse the catalog",
	}

	var f bookFilters
	list := &cobra.Command{
		Use:   "list",
		Short: "Search books across every library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var page catalog.Page
			if err := a.client.GetJSON(cmd.Context(), "/api/books", f.query(cmd), &page); err != nil {
				return err
			}
			return printBooks(a, page)
		},
	}

	flags := list.Flags()
	flags.StringVar(&f.search, "search", "", "title or ISBN substring")
	flags.Float64Var(&f.minPrice, "min-price", 0, "minimum weekly price")
	flags.Float64Var(&f.maxPrice, "max-price", 0, "maximum weekly price")
	flags.StringSliceVar(&f.genres, "genre", nil, "genre name or slug (repeatable)")
	flags.StringSliceVar(&f.languages, "language", nil, "language (repeatable)")
	flags.StringSliceVar(&f.conditions, "condition", nil, "condition such as like_new (repeatable)")
	flags.StringVar(&f.location, "location", "", "city substring, used when --city is empty")
	flags.StringVar(&f.pincode, "pincode", "", "exact library postal code; wins over --city")
	flags.StringVar(&f.city, "city", "", "library city substring")
	flags.BoolVar(&f.availableNow, "available-now", false, "only books with a free copy")
	flags.StringVar(&f.sortBy, "sort", "", "relevance, available_now, top_rated, new_arrivals, price_low, price_high or most_rented")
	flags.IntVar(&f.page, "page", 1, "page number")
	flags.IntVar(&f.limit, "limit", catalog.DefaultLimit, "page size")

	books.AddCommand(list)
	return books
}

func printBooks(a *app, page catalog.Page) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tAUTHOR\tGENRE\tPRICE/WEEK\tAVAILABLE\tLIBRARIES")
	for _, b := range page.Books {
		author := "-"
		if b.Author != nil {
			author = b.Author.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d/%d\t%d\n",
			truncate(b.Title, 40), truncate(author, 25), b.Genre.Name,
			b.RentalPricePerWeek, b.AvailableCopies, b.TotalCopies, b.LibrariesCount,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p := page.Pagination
	fmt.Fprintf(a.out, "page %d of %d (%d books)\n", p.Page, p.TotalPages, p.TotalBooks)
	return nil
}

func newWalletCommand(a *app) *cobra.Command {
	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Deposit wallet of a reader account",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireReader(a); err != nil {
				return err
			}
			if _, err := a.login(cmd.Context()); err != nil {
				return err
			}

			var out wallet
			if err := a.client.GetJSON(cmd.Context(), "/api/wallet", nil, &out); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Balance: %.2f\n", out.Balance)
			return nil
		},
	}

	deposit := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Top up the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive number, got %q", args[0])
			}
			if err := requireReader(a); err != nil {
				return err
			}
			if _, err := a.login(cmd.Context()); err != nil {
				return err
			}

			var out wallet
			if err := a.client.PostJSON(cmd.Context(), "/api/wallet/deposit", map[string]float64{"amount": amount}, &out); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Balance: %.2f\n", out.Balance)
			return nil
		},
	}

	walletCmd.AddCommand(show, deposit)
	return walletCmd
}

func newLibraryCommand(a *app) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Inventory of a library account",
	}

	var total, available int
	stock := &cobra.Command{
		Use:   "stock <bookID>",
		Short: "Set the copy counts of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLibrary(a); err != nil {
				return err
			}
			if _, err := a.login(cmd.Context()); err != nil {
				return err
			}

			var item inventoryItem
			err := a.client.PatchJSON(cmd.Context(), "/api/library/books/"+url.PathEscape(args[0])+"/stock", map[string]int{
				"totalCopies":     total,
				"availableCopies": available,
			}, &item)
			if err != nil {
				return err
			}

			state := "unavailable"
			if item.IsAvailable {
				state = "available"
			}
			fmt.Fprintf(a.out, "%s: %d/%d copies, %s\n", item.Book.Title, item.AvailableCopies, item.TotalCopies, state)
			return nil
		},
	}
	stock.Flags().IntVar(&total, "total", 0, "total copies")
	stock.Flags().IntVar(&available, "available", 0, "available copies")
	_ = stock.MarkFlagRequired("total")
	_ = stock.MarkFlagRequired("available")

	libraryCmd.AddCommand(stock)
	return libraryCmd
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
