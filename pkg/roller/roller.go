package roller

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ErrEmpty is returned when there is nothing to roll against.
var ErrEmpty = errors.New("nothing to roll")

type RollerConfig struct {
	Seed        int64 // 0 means time based
	ShowSpinner bool
	Delay       time.Duration
}

type Roller struct {
	config RollerConfig
	rng    *rand.Rand
}

func NewWithConfig(config RollerConfig) *Roller {
	if config.Delay == 0 {
		config.Delay = 500 * time.Millisecond
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func New() *Roller {
	return NewWithConfig(RollerConfig{
		ShowSpinner: true,
	})
}

// Roll rolls a dn: a uniform index in [0, n). The spinner and its delay
// are purely cosmetic, the draw depends only on n and the rng.
func (r *Roller) Roll(n int, msg string) (int, error) {
	if n <= 0 {
		return 0, ErrEmpty
	}

	if r.config.ShowSpinner {
		spin := getSpinner(fmt.Sprintf("%s (d%d)", msg, n))
		// fake delay, just for fun; tick so the spinner animates
		tick := r.config.Delay / 10
		if tick <= 0 {
			tick = time.Millisecond
		}
		for i := 0; i < 10; i++ {
			spin.Add(1)
			time.Sleep(tick)
		}
		spin.Finish()
		fmt.Print("\r")
	}

	return r.rng.Intn(n), nil
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}
