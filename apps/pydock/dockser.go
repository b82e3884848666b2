package pydock

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NBDsoftware/biobb-pydock/io/ene"
)

// DockserInput names the prepared structures and the pose transformation
// table from rotftdock.
type DockserInput struct {
	Rec string
	Lig string
	Rot string
}

// Dockser scores every pose in the transformation table with the tool's
// energy function, writes the ranked table to outEne and returns summary
// statistics of its Total column.
func (c Config) Dockser(ctx context.Context, in DockserInput, outEne string) (ene.Summary, error) {
	if c.skip(outEne) {
		return c.summarize(outEne)
	}

	stage, err := c.newStaging()
	if err != nil {
		return ene.Summary{}, err
	}
	defer stage.Remove()

	err = stage.StageInputs(map[string]string{
		c.recName(): in.Rec,
		c.ligName(): in.Lig,
		c.rotName(): in.Rot,
	})
	if err != nil {
		return ene.Summary{}, err
	}

	r := c.runner()
	if err := r.Run(ctx, stage, r.CmdPath(stage, c.Name), "dockser"); err != nil {
		return ene.Summary{}, err
	}
	if err := stage.Collect(map[string]string{c.eneName(): outEne}); err != nil {
		return ene.Summary{}, err
	}
	return c.summarize(outEne)
}

func (c Config) summarize(enePath string) (ene.Summary, error) {
	t, err := ene.ReadFile(enePath)
	if err != nil {
		return ene.Summary{}, fmt.Errorf("pydock: reading energy table: %w", err)
	}
	sum, err := t.Summarize("Total")
	if err != nil {
		return ene.Summary{}, err
	}
	c.log().Info("energy ranking",
		zap.Int("poses", sum.N),
		zap.Float64("best", sum.Best),
		zap.Float64("mean", sum.Mean),
		zap.Float64("stddev", sum.StdDev))
	return sum, nil
}
