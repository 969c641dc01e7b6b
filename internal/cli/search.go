package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/metcollection/pkg/errors"
	"github.com/matzehuels/metcollection/pkg/integrations/met"
)

// searchFlags holds the filter flags of the search command.
type searchFlags struct {
	highlight       bool
	onView          bool
	hasImages       bool
	title           bool
	tags            bool
	artistOrCulture bool
	department      int
	dateBegin       int
	dateEnd         int
	medium          []string
	geoLocation     []string
	limit           int
}

// searchCommand creates the "search <query>" command.
func (c *CLI) searchCommand() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the collection",
		Long: `Search the collection and print matching object IDs.

Only filters given on the command line are sent. Boolean filters accept an
explicit value, so --on-view=false asks for objects not on view. --medium and
--geo-location may be repeated; the values are joined with "|".`,
		Example: `  metcollection search sunflowers --highlight --has-images
  metcollection search vase --medium Ceramics --medium Glass
  metcollection search portrait --date-begin 1700 --date-end 1800 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("date-begin") && cmd.Flags().Changed("date-end") {
				if err := apperrors.ValidateDateRange(f.dateBegin, f.dateEnd); err != nil {
					return err
				}
			}
			opts := f.options(cmd)
			c.Logger.Debug("search", "query", met.EncodeSearch(args[0], opts))

			prog := newProgress(c.Logger)
			var res *met.ObjectSummaryList
			err := c.await(cmd.Context(), "Searching...", func(ctx context.Context) (err error) {
				res, err = c.newClient().Search(ctx, args[0], opts)
				return err
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Found %d objects", res.Total))
			return c.printSummary(cmd, res, f.limit, "matching objects")
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.highlight, "highlight", false, "only highlighted objects")
	flags.BoolVar(&f.onView, "on-view", false, "only objects currently on view")
	flags.BoolVar(&f.hasImages, "has-images", false, "only objects with images")
	flags.BoolVar(&f.title, "title", false, "match the query against titles")
	flags.BoolVar(&f.tags, "tags", false, "match the query against subject tags")
	flags.BoolVar(&f.artistOrCulture, "artist-or-culture", false, "match the query against artist or culture")
	flags.IntVar(&f.department, "department", 0, "department ID (see the departments command)")
	flags.IntVar(&f.dateBegin, "date-begin", 0, "earliest object year")
	flags.IntVar(&f.dateEnd, "date-end", 0, "latest object year")
	cmd.MarkFlagsRequiredTogether("date-begin", "date-end")
	flags.StringArrayVar(&f.medium, "medium", nil, "object type or material (repeatable)")
	flags.StringArrayVar(&f.geoLocation, "geo-location", nil, "place of origin (repeatable)")
	flags.IntVarP(&f.limit, "limit", "n", defaultLimit, "maximum IDs to print (0 for all)")
	_ = cmd.RegisterFlagCompletionFunc("department", c.completeDepartments)

	return cmd
}

// options converts the flags the user set into search options, in a fixed
// order. Unset flags stay absent and are not sent at all.
func (f *searchFlags) options(cmd *cobra.Command) *met.SearchOptions {
	flags := cmd.Flags()
	setBool := func(name string, v bool) *bool {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}
	setInt := func(name string, v int) *int {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}

	opts := met.NewSearchOptions().
		Set(met.KeyIsHighlight, met.OptionalBool(setBool("highlight", f.highlight))).
		Set(met.KeyIsOnView, met.OptionalBool(setBool("on-view", f.onView))).
		Set(met.KeyHasImages, met.OptionalBool(setBool("has-images", f.hasImages))).
		Set(met.KeyTitle, met.OptionalBool(setBool("title", f.title))).
		Set(met.KeyTags, met.OptionalBool(setBool("tags", f.tags))).
		Set(met.KeyArtistOrCulture, met.OptionalBool(setBool("artist-or-culture", f.artistOrCulture))).
		Set(met.KeyDepartmentID, met.OptionalInt(setInt("department", f.department))).
		Set(met.KeyDateBegin, met.OptionalInt(setInt("date-begin", f.dateBegin))).
		Set(met.KeyDateEnd, met.OptionalInt(setInt("date-end", f.dateEnd)))

	if flags.Changed("medium") {
		opts.Medium(f.medium...)
	}
	if flags.Changed("geo-location") {
		opts.GeoLocation(f.geoLocation...)
	}
	return opts
}
