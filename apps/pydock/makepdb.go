package pydock

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"

	"github.com/NBDsoftware/biobb-pydock/io/ene"
	"github.com/NBDsoftware/biobb-pydock/launch"
)

// MakePDBInput names the full prepared set plus the pose table and energy
// ranking, and the inclusive rank range [Rank1, Rank2] of poses to extract.
// Setting Rank1 == Rank2 extracts a single model.
type MakePDBInput struct {
	Rec      string
	RecH     string
	RecAmber string

	Lig      string
	LigH     string
	LigAmber string

	Rot string
	Ene string

	Rank1 int
	Rank2 int
}

// MakePDB has the tool build a PDB model for every pose whose rank lies in
// the input range, bundles the models into a zip archive at outZip and
// returns their file names. The names are predicted from the energy table
// before the run; the tool writes '<name>_<conf>.pdb' per selected pose.
func (c Config) MakePDB(ctx context.Context, in MakePDBInput, outZip string) ([]string, error) {
	if in.Rank1 < 1 || in.Rank2 < in.Rank1 {
		return nil, fmt.Errorf("pydock: bad rank range [%d, %d]", in.Rank1, in.Rank2)
	}

	t, err := ene.ReadFile(in.Ene)
	if err != nil {
		return nil, fmt.Errorf("pydock: reading energy table: %w", err)
	}
	models := ene.ModelFilenames(c.Name, t.RankRange(in.Rank1, in.Rank2))
	if len(models) == 0 {
		return nil, fmt.Errorf("pydock: no poses with rank in [%d, %d]", in.Rank1, in.Rank2)
	}
	c.log().Info("extracting docking models",
		zap.Int("rank1", in.Rank1),
		zap.Int("rank2", in.Rank2),
		zap.Int("models", len(models)))

	if c.skip(outZip) {
		return models, nil
	}

	stage, err := c.newStaging()
	if err != nil {
		return nil, err
	}
	defer stage.Remove()

	err = stage.StageInputs(map[string]string{
		c.recName():      in.Rec,
		c.recHName():     in.RecH,
		c.recAmberName(): in.RecAmber,
		c.ligName():      in.Lig,
		c.ligHName():     in.LigH,
		c.ligAmberName(): in.LigAmber,
		c.rotName():      in.Rot,
		c.eneName():      in.Ene,
	})
	if err != nil {
		return nil, err
	}

	r := c.runner()
	err = r.Run(ctx, stage, r.CmdPath(stage, c.Name), "makePDB",
		strconv.Itoa(in.Rank1), strconv.Itoa(in.Rank2))
	if err != nil {
		return nil, err
	}

	if err := zipModels(outZip, stage, models); err != nil {
		return nil, err
	}
	return models, nil
}

// zipModels bundles the staged model files into a zip archive.
func zipModels(outZip string, stage *launch.Staging, models []string) error {
	out, err := os.Create(outZip)
	if err != nil {
		return fmt.Errorf("pydock: creating %s: %w", outZip, err)
	}
	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestSpeed)
	})

	for _, model := range models {
		in, err := os.Open(stage.Path(model))
		if err != nil {
			out.Close()
			return fmt.Errorf("pydock: expected model %s was not created", model)
		}
		w, err := zw.Create(model)
		if err == nil {
			_, err = io.Copy(w, in)
		}
		in.Close()
		if err != nil {
			out.Close()
			return fmt.Errorf("pydock: archiving %s: %w", model, err)
		}
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
