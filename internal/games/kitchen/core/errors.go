package core

import "errors"

// Refusals. Interactions that cannot go ahead return one of these; the
// interaction resolver turns them into a transient message and leaves the
// kitchen untouched.
var (
	ErrOutOfReach     = errors.New("kitchen: nothing within reach")
	ErrHandsFull      = errors.New("kitchen: hands are full")
	ErrNothingHeld    = errors.New("kitchen: nothing held")
	ErrNeedsChopping  = errors.New("kitchen: ingredient must be chopped first")
	ErrNeedPlate      = errors.New("kitchen: a plate is needed")
	ErrStationBusy    = errors.New("kitchen: station is busy")
	ErrStillChopping  = errors.New("kitchen: still chopping")
	ErrStillCooking   = errors.New("kitchen: still cooking")
	ErrVesselFull     = errors.New("kitchen: pot is full")
	ErrNothingToChop  = errors.New("kitchen: nothing to chop")
	ErrAlreadyChopped = errors.New("kitchen: already chopped")
	ErrAlreadyCooked  = errors.New("kitchen: already cooked")
	ErrPlateInHand    = errors.New("kitchen: plate needs a destination")
)

// Catalog construction errors.
var (
	ErrEmptyCatalog  = errors.New("catalog: no recipes")
	ErrInvalidRecipe = errors.New("catalog: invalid recipe")
	ErrDuplicateDish = errors.New("catalog: duplicate dish")
)

// refusalText is the player-facing wording of a refusal.
func refusalText(err error) string {
	switch {
	case errors.Is(err, ErrNeedsChopping):
		return "Chop it first!"
	case errors.Is(err, ErrNeedPlate):
		return "Grab a plate first"
	case errors.Is(err, ErrStillChopping):
		return "Still chopping..."
	case errors.Is(err, ErrStillCooking):
		return "Still cooking..."
	case errors.Is(err, ErrStationBusy):
		return "That spot is taken"
	case errors.Is(err, ErrVesselFull):
		return "The pot is full"
	case errors.Is(err, ErrNothingToChop):
		return "Nothing on the board to chop"
	case errors.Is(err, ErrAlreadyChopped):
		return "Already chopped"
	case errors.Is(err, ErrAlreadyCooked):
		return "That's already cooked"
	case errors.Is(err, ErrPlateInHand):
		return "Serve it, bin it, or press G to put it down"
	case errors.Is(err, ErrHandsFull):
		return "Your hands are full"
	case errors.Is(err, ErrNothingHeld):
		return "Your hands are empty"
	case errors.Is(err, ErrOutOfReach):
		return "Nothing within reach"
	default:
		return err.Error()
	}
}
