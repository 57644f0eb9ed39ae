package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printEstimate(w io.Writer, est *domain.PriceEstimate) error {
	tw := newTabWriter(w)
	tw.writef("Market Price:\t$%.2f\n", est.MarketPrice)
	tw.writef("Recommended:\t$%.2f\n", est.RecommendedPrice)
	tw.writef("Seller Multiplier:\t%.3f\n", est.SellerMultiplier)
	tw.writef("Confidence:\t%s (depth %d)\n", est.Confidence, est.DepthReached)
	tw.writef("Comparables:\t%d\n", est.ComparableCount)
	if len(est.Elasticity) > 0 {
		tw.writef("\nOFFSET\tPRICE\tPREDICTED DAYS\n")
		for _, p := range est.Elasticity {
			tw.writef("%+.0f%%\t$%.2f\t%.1f\n", p.Offset, p.Price, p.PredictedDays)
		}
	}
	return tw.finish()
}

func printComparables(w io.Writer, set *engine.ComparableSet) error {
	tw := newTabWriter(w)
	tw.writef("Market Price:\t$%.2f\n", set.MarketPrice)
	tw.writef("Depth Reached:\t%d\n\n", set.DepthReached)
	tw.writef("ID\tVEHICLE\tMILEAGE\tPRICE\tDEPTH\tSOLD\tMILES AWAY\tWEIGHT\n")
	for i := range set.Comparables {
		c := &set.Comparables[i]
		tw.writef("%s\t%s\t%d\t$%.2f\t%d\t%v\t%s\t%.3f\n",
			c.Listing.ID,
			vehicleName(&c.Listing),
			c.Listing.Mileage,
			c.Listing.Price,
			c.Depth,
			c.Listing.Sold,
			optionalMiles(c.Proximity),
			c.Weight.Total,
		)
	}
	return tw.finish()
}

func printScores(w io.Writer, scored []score.Scored) error {
	tw := newTabWriter(w)
	tw.writef("RANK\tLISTING\tSCORE\tVIEWS\tFAVORITES\tDWELL\tPROXIMITY\n")
	for i := range scored {
		s := &scored[i]
		tw.writef("%d\t%s\t%.3f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			i+1,
			s.ListingID,
			s.Score,
			s.Breakdown.Views,
			s.Breakdown.Favorites,
			s.Breakdown.Dwell,
			s.Breakdown.Proximity,
		)
	}
	return tw.finish()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tVEHICLE\tCONDITION\tMILEAGE\tPRICE\tVIEWS\tSOLD\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%d\t$%.2f\t%d\t%v\n",
			l.ID,
			vehicleName(l),
			l.Condition,
			l.Mileage,
			l.Price,
			l.Views,
			l.Sold,
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("VIN:\t%s\n", l.VIN)
	tw.writef("Vehicle:\t%s\n", vehicleName(l))
	tw.writef("Condition:\t%s\n", l.Condition)
	tw.writef("Mileage:\t%d\n", l.Mileage)
	if l.Color != "" {
		tw.writef("Color:\t%s\n", l.Color)
	}
	tw.writef("Price:\t$%.2f\n", l.Price)
	if p := l.Location(); p != nil {
		tw.writef("Location:\t%.4f, %.4f\n", p.Lat, p.Lon)
	}
	if l.Owned() {
		tw.writef("Owner:\t%s\n", *l.OwnerID)
	}
	tw.writef("Views:\t%d\n", l.Views)
	tw.writef("Favorites:\t%d\n", l.Favorites)
	if l.SoldAt != nil {
		tw.writef("Sold:\t%s\n", l.SoldAt.Format(timeLayout))
	}
	return tw.finish()
}

func printUser(w io.Writer, u *domain.User) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", u.ID)
	tw.writef("Email:\t%s\n", u.Email)
	tw.writef("ZIP:\t%s\n", u.ZIP)
	if p := u.Location(); p != nil {
		tw.writef("Location:\t%.4f, %.4f\n", p.Lat, p.Lon)
	} else {
		tw.writef("Location:\tunknown\n")
	}
	return tw.finish()
}

func printPreferences(w io.Writer, prefs []domain.SearchPreference) error {
	tw := newTabWriter(w)
	tw.writef("ID\tKIND\tFILTER\tCREATED\n")
	for i := range prefs {
		p := &prefs[i]
		tw.writef("%s\t%s\t%s\t%s\n", p.ID, p.Kind, p.Filter.Key(), p.CreatedAt.Format(timeLayout))
	}
	return tw.finish()
}

func vehicleName(l *domain.Listing) string {
	return fmt.Sprintf("%d %s %s", l.Year, l.Make, l.Model)
}

func optionalMiles(m *float64) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *m)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
