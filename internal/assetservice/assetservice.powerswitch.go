// FilePath: internal/assetservice/assetservice.powerswitch.go
package assetservice

import (
	"context"
	"time"

	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

// SwitchPowerSource records a transition between grid and generator supply.
// toGenerator=false requires sourceID to be an existing Grid, toGenerator=true
// an existing DGSet. Validation happens before any write, so a failed switch
// leaves the prior state untouched. Exactly one of grid_id/dgset_id is set in
// the resulting record; the other is cleared. Switching is always an explicit
// command, never an automatic failover.
func (s *AssetService) SwitchPowerSource(ctx context.Context, toGenerator bool, sourceID string) (*models.PowerSwitch, error) {
	if sourceID == "" {
		return nil, errors.NewValidationError("source id is required", nil).WithDetails("source_id")
	}

	if toGenerator {
		if _, err := s.DGSets.Get(ctx, sourceID); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.NewValidationError("dgset does not exist: "+sourceID, err).WithDetails("dgset_id")
			}
			return nil, err
		}
	} else {
		if _, err := s.Grids.Get(ctx, sourceID); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.NewValidationError("grid does not exist: "+sourceID, err).WithDetails("grid_id")
			}
			return nil, err
		}
	}

	sw, err := s.PowerSwitches.Current(ctx)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		sw = &models.PowerSwitch{ID: nuts.NID("psw", 12)}
	}

	sw.Status = toGenerator
	sw.GridID = nil
	sw.DGSetID = nil
	if toGenerator {
		sw.DGSetID = &sourceID
	} else {
		sw.GridID = &sourceID
	}
	sw.UpdatedAt = time.Now()

	if err := s.PowerSwitches.Save(ctx, sw); err != nil {
		return nil, err
	}

	source := "grid"
	if toGenerator {
		source = "generator"
	}
	nuts.L.Infof("[PowerSwitchService] Facility now on %s supply (source %s)", source, sourceID)
	return sw, nil
}

// CurrentPowerSource returns the current power-source record.
func (s *AssetService) CurrentPowerSource(ctx context.Context) (*models.PowerSwitch, error) {
	return s.PowerSwitches.Current(ctx)
}
