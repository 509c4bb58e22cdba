package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/urlsync"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/filterstate"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// HandleFilterSession serves POST /api/v1/filters/chips. It replays the
// submitted action sequence over a fresh session and returns the derived
// chip list, counters, price label and canonical path, so every client
// renders filters from the same transition rules.
func (h *CatalogHandlers) HandleFilterSession(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleFilterSession"})

	var reqDTO FilterSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			logger.Error("Failed to decode request body", err, nil)
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if reqDTO.BasePath == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'basePath' is required")
		return
	}

	recorder := urlsync.NewRecorder()
	machine := filterstate.NewMachine(reqDTO.BasePath, filterstate.TypeFilter(reqDTO.Type), recorder)

	for i, action := range reqDTO.Actions {
		if err := applyFilterAction(machine, action); err != nil {
			WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid action at index %d: %v", i, err))
			return
		}
	}

	state := machine.State()
	chips := state.Chips()
	chipDTOs := make([]ChipDTO, len(chips))
	for i, chip := range chips {
		chipDTOs[i] = ChipDTO{ID: chip.ID, Label: chip.Label}
	}

	RespondWithJSON(w, http.StatusOK, FilterSessionResponseDTO{
		Chips:            chipDTOs,
		ActiveCount:      state.ActiveCount(),
		HasActiveFilters: state.HasActiveFilters(),
		PriceLabel:       state.PriceLabel(),
		Sort:             string(state.Sort),
		Type:             string(state.Type),
		VisiblePath:      machine.VisiblePath(),
		PathHistory:      recorder.Paths(),
	})
}

func applyFilterAction(machine *filterstate.Machine, action FilterActionDTO) error {
	switch action.Op {
	case "setType":
		switch filterstate.TypeFilter(action.Value) {
		case filterstate.TypeAll, filterstate.TypeSale, filterstate.TypeRent:
			machine.SetType(filterstate.TypeFilter(action.Value))
		default:
			return fmt.Errorf("unknown listing type %q", action.Value)
		}
	case "setSort":
		option := domain.SortOption(action.Value)
		if !domain.ValidSortOption(option) {
			return fmt.Errorf("unknown sort option %q", action.Value)
		}
		machine.SetSort(option)
	case "applyPrice":
		machine.ApplyPrice(action.Min, action.Max)
	case "clearPrice":
		machine.ClearPrice()
	case "toggleMunicipio":
		if action.Value == "" {
			return fmt.Errorf("municipality name is required")
		}
		machine.ToggleMunicipio(action.Value)
	case "toggleCategory":
		if action.Value == "" {
			return fmt.Errorf("category name is required")
		}
		machine.ToggleCategory(action.Value)
	case "clearAll":
		machine.ClearAll()
	case "removeChip":
		machine.RemoveChip(action.Value)
	default:
		return fmt.Errorf("unknown op %q", action.Op)
	}
	return nil
}
