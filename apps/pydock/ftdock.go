package pydock

import (
	"context"
)

// FtdockInput names the prepared structures from the setup stage.
type FtdockInput struct {
	Rec string
	Lig string
}

// Ftdock samples rigid-body docking poses with the tool's FFT search and
// writes the raw pose list to outFtdock.
func (c Config) Ftdock(ctx context.Context, in FtdockInput, outFtdock string) error {
	if c.skip(outFtdock) {
		return nil
	}

	stage, err := c.newStaging()
	if err != nil {
		return err
	}
	defer stage.Remove()

	err = stage.StageInputs(map[string]string{
		c.recName(): in.Rec,
		c.ligName(): in.Lig,
	})
	if err != nil {
		return err
	}

	r := c.runner()
	if err := r.Run(ctx, stage, r.CmdPath(stage, c.Name), "ftdock"); err != nil {
		return err
	}
	return stage.Collect(map[string]string{c.ftdockName(): outFtdock})
}

// Rotftdock converts a raw ftdock pose list into the transformation-matrix
// table (.rot) consumed by the scoring stages.
func (c Config) Rotftdock(ctx context.Context, inFtdock, outRot string) error {
	if c.skip(outRot) {
		return nil
	}

	stage, err := c.newStaging()
	if err != nil {
		return err
	}
	defer stage.Remove()

	if err := stage.StageInputs(map[string]string{c.ftdockName(): inFtdock}); err != nil {
		return err
	}

	r := c.runner()
	if err := r.Run(ctx, stage, r.CmdPath(stage, c.Name), "rotftdock"); err != nil {
		return err
	}
	return stage.Collect(map[string]string{c.rotName(): outRot})
}
