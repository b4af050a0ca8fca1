package drawer

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-aggro/pkg/aggro"
)

// Build walks a pipeline's wire form and populates the drawer with one vertex
// per stage, linked in order. Sub-pipelines carried by stages such as $lookup,
// $unionWith and $facet are walked recursively and appear as nested chains
// hanging off their owning stage.
func Build(drw Drawer, pipe *aggro.Pipeline) error {
	_, err := buildChain(drw, pipe.ToWireList(), "", 0)

	return err
}

// buildChain adds a chain of stage vertices and returns the label of the
// first stage so the caller can link to it.
func buildChain(drw Drawer, wireList []any, prefix string, depth int) (string, error) {
	first := ""
	previous := ""

	for i, wire := range wireList {
		doc, ok := wire.(map[string]any)
		if !ok || len(doc) != 1 {
			return "", errors.Wrapf(aggro.ErrInvalidOperandType, "stage %d is not a single-key document", i)
		}

		name, body := singleEntry(doc)
		label := fmt.Sprintf("%s%d %s", prefix, i, name)

		err := drw.AddStage(label, depth)
		if err != nil {
			return "", err
		}

		if first == "" {
			first = label
		}

		if previous != "" {
			err = drw.AddLink(previous, label)
			if err != nil {
				return "", err
			}
		}

		err = buildNested(drw, label, body, depth)
		if err != nil {
			return "", err
		}

		previous = label
	}

	return first, nil
}

// buildNested links any sub-pipelines found in a stage body to the stage
// vertex. A body value counts as a sub-pipeline when it is a list whose every
// element is a single-key "$" document.
func buildNested(drw Drawer, parentLabel string, body any, depth int) error {
	doc, ok := body.(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sub, ok := asSubPipeline(doc[key])
		if !ok {
			continue
		}

		head, err := buildChain(drw, sub, parentLabel+" / "+key+" / ", depth+1)
		if err != nil {
			return err
		}

		if head != "" {
			err = drw.AddLink(parentLabel, head)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func asSubPipeline(v any) ([]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}

	for _, elem := range list {
		doc, ok := elem.(map[string]any)
		if !ok || len(doc) != 1 {
			return nil, false
		}

		name, _ := singleEntry(doc)
		if !strings.HasPrefix(name, "$") {
			return nil, false
		}
	}

	return list, true
}

func singleEntry(doc map[string]any) (string, any) {
	for k, v := range doc {
		return k, v
	}

	return "", nil
}

// DrawAll renders several named pipelines concurrently, one DOT file per
// pipeline, named <name>.dot inside dir.
func DrawAll(ctx context.Context, dir string, pipelines map[string]*aggro.Pipeline) error {
	errGrp, _ := errgroup.WithContext(ctx)

	for name, pipe := range pipelines {
		localName, localPipe := name, pipe
		errGrp.Go(func() error {
			drw := NewDOTDrawer(filepath.Join(dir, localName+".dot"))

			err := Build(drw, localPipe)
			if err != nil {
				return errors.Wrapf(err, "unable to build graph for pipeline %s", localName)
			}

			return drw.Draw()
		})
	}

	return errGrp.Wait()
}
