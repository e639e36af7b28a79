package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/example/wb-order-client/internal/format"
	"github.com/example/wb-order-client/internal/render"
	"github.com/example/wb-order-client/internal/view"
)

// Region печатает состояния области отображения в терминал.
type Region struct {
	mu  sync.Mutex
	out io.Writer
}

func NewRegion(out io.Writer) *Region {
	return &Region{out: out}
}

func (r *Region) Show(s view.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch st := s.(type) {
	case view.Loading:
		r.showLoading()
	case view.Failure:
		r.showFailure(st.Message)
	case view.Populated:
		r.showDocument(st.Doc)
	}
}

func (r *Region) showLoading() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "⏳ Loading Order...")
	fmt.Fprintln(r.out, "Please wait while we fetch the order details.")
}

func (r *Region) showFailure(message string) {
	fmt.Fprintln(r.out)
	color.New(color.FgRed, color.Bold).Fprintln(r.out, "Order Not Found")
	fmt.Fprintln(r.out, message)
}

func (r *Region) showDocument(doc *render.Document) {
	bold := color.New(color.Bold)

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, doc.Header.Title)
	fmt.Fprintln(r.out, doc.Header.Subtitle)
	fmt.Fprintln(r.out, doc.Header.Created)
	color.New(color.FgGreen, color.Bold).Fprintln(r.out, "Total: "+doc.Header.TotalBadge)

	fmt.Fprintln(r.out)
	for _, m := range doc.Meta {
		fmt.Fprintf(r.out, "%-18s %s\n", m.Label+":", m.Value)
	}

	r.showPanel(doc.Delivery)
	r.showPanel(doc.Payment)

	fmt.Fprintln(r.out)
	bold.Fprintf(r.out, "Order Items (%d)\n", doc.Items.Count)
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Product", "Brand", "ID", "Size", "Original", "Sale", "Total", "Status", "Track"})
	for _, row := range doc.Items.Rows {
		table.Append([]string{
			row.Name, row.Brand, row.ID, row.Size,
			row.Original, row.Sale, row.Total,
			badgeText(row.Status), row.Track,
		})
	}
	table.Render()
}

func (r *Region) showPanel(p render.Panel) {
	fmt.Fprintln(r.out)
	color.New(color.Bold).Fprintln(r.out, p.Title)
	for _, row := range p.Rows {
		if row.Total {
			color.New(color.Bold).Fprintf(r.out, "%-16s %s\n", row.Label+":", row.Value)
			continue
		}
		fmt.Fprintf(r.out, "%-16s %s\n", row.Label+":", row.Value)
	}
}

// badgeText красит метку по её классу оформления.
func badgeText(b format.Badge) string {
	if b.Class == format.ClassAccepted {
		return color.GreenString(b.Label)
	}
	return color.YellowString(b.Label)
}

var _ view.Region = (*Region)(nil)
