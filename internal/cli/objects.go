package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/metcollection/pkg/errors"
	"github.com/matzehuels/metcollection/pkg/integrations/met"
)

const defaultLimit = 50

// objectsCommand creates the "objects" command.
func (c *CLI) objectsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "objects",
		Short: "List object IDs in the collection",
		Long: `List the IDs of every object in the collection.

The API returns the full list (several hundred thousand IDs); --limit caps how
many are printed. The total is always reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			var res *met.ObjectSummaryList
			err := c.await(cmd.Context(), "Fetching object IDs...", func(ctx context.Context) (err error) {
				res, err = c.newClient().ListObjects(ctx)
				return err
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d object IDs", len(res.ObjectIDs)))
			return c.printSummary(cmd, res, limit, "objects")
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLimit, "maximum IDs to print (0 for all)")
	return cmd
}

// objectCommand creates the "object <id>" command.
func (c *CLI) objectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "object <id>",
		Short: "Show one object's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := apperrors.ParseObjectID(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			var obj *met.ObjectDetails
			err = c.await(cmd.Context(), fmt.Sprintf("Fetching object %d...", id), func(ctx context.Context) (err error) {
				obj, err = c.newClient().GetObject(ctx, id)
				return err
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched object %d", obj.ObjectID))

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, c.output, obj); ok {
				return err
			}
			printObject(cmd, obj)
			return nil
		},
	}
}

// printSummary renders an ID list in the selected output format.
func (c *CLI) printSummary(cmd *cobra.Command, res *met.ObjectSummaryList, limit int, noun string) error {
	shown := met.ObjectSummaryList{
		Total:     res.Total,
		ObjectIDs: limitIDs(res.ObjectIDs, limit),
	}

	w := cmd.OutOrStdout()
	if ok, err := writeStructured(w, c.output, shown); ok {
		return err
	}

	printCount(w, shown.Total, noun)
	if len(shown.ObjectIDs) == 0 {
		return nil
	}
	fmt.Fprintln(w, renderTable([]string{"Object ID"}, idRows(shown.ObjectIDs), []columnAlignment{alignRight}))
	if len(shown.ObjectIDs) < len(res.ObjectIDs) {
		printDetail(w, "showing %d of %d IDs (use --limit 0 for all)", len(shown.ObjectIDs), len(res.ObjectIDs))
	}
	return nil
}

// printObject renders an object record as labeled text.
func printObject(cmd *cobra.Command, obj *met.ObjectDetails) {
	w := cmd.OutOrStdout()

	title := obj.Title
	if title == "" {
		title = obj.ObjectName
	}
	if obj.IsHighlight {
		title += " " + styleHighlight.Render(iconStar)
	}
	printTitle(w, title)

	printKeyValue(w, "Object ID", strconv.Itoa(obj.ObjectID))
	printKeyValue(w, "Artist", obj.Artist())
	printKeyValue(w, "Artist bio", obj.ArtistDisplayBio)
	printKeyValue(w, "Date", obj.ObjectDate)
	printKeyValue(w, "Culture", obj.Culture)
	printKeyValue(w, "Period", obj.Period)
	printKeyValue(w, "Medium", obj.Medium)
	printKeyValue(w, "Dimensions", obj.Dimensions)
	printKeyValue(w, "Classification", obj.Classification)
	printKeyValue(w, "Department", obj.Department)
	printKeyValue(w, "Country", obj.Country)
	printKeyValue(w, "Credit line", obj.CreditLine)
	printKeyValue(w, "Accession", obj.AccessionNumber)
	printKeyValue(w, "Gallery", obj.GalleryNumber)
	printFlag(w, "On view", obj.OnView())
	printFlag(w, "Public domain", obj.IsPublicDomain)
	printLink(w, "Image", obj.PrimaryImage)
	printLink(w, "URL", obj.ObjectURL)

	if len(obj.Constituents) > 0 {
		printTitle(w, "Constituents")
		for _, con := range obj.Constituents {
			printBullet(w, "%s (%s)", con.Name, con.Role)
		}
	}
	if len(obj.Tags) > 0 {
		printTitle(w, "Tags")
		for _, tag := range obj.Tags {
			printBullet(w, "%s", tag.Term)
		}
	}
}
