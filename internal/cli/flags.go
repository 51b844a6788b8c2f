package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"github.com/spf13/pflag"
)

// periodValue is a --period flag holding a pay period as YYYY-MM.
type periodValue struct {
	period calendar.Period
	set    bool
}

var _ pflag.Value = (*periodValue)(nil)

func (v *periodValue) String() string {
	if !v.set {
		return ""
	}
	return v.period.String()
}

func (v *periodValue) Set(s string) error {
	p, err := calendar.ParsePeriod(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	v.period = p
	v.set = true
	return nil
}

func (v *periodValue) Type() string { return "period" }

// resolve returns the flag's period, or the period containing today.
func (v *periodValue) resolve(app *App) calendar.Period {
	if v.set {
		return v.period
	}
	return app.currentPeriod()
}

func addPeriodFlag(fs *pflag.FlagSet, v *periodValue) {
	fs.Var(v, "period", "pay period starting on the 16th of YYYY-MM (default: current)")
}

// mediumValue is a --medium flag selecting screen, print or plain output.
type mediumValue struct {
	medium shiftcode.Medium
}

var _ pflag.Value = (*mediumValue)(nil)

func (v *mediumValue) String() string { return v.medium.String() }

func (v *mediumValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "screen":
		v.medium = shiftcode.MediumScreen
	case "print":
		v.medium = shiftcode.MediumPrint
	case "plain":
		v.medium = shiftcode.MediumPlain
	default:
		return fmt.Errorf("invalid medium %q (want screen, print or plain)", s)
	}
	return nil
}

func (v *mediumValue) Type() string { return "medium" }

// layoutValue selects the PDF layout.
type layoutValue string

const (
	layoutHelp       layoutValue = "help"
	layoutIndividual layoutValue = "individual"
	layoutStore      layoutValue = "store"
)

var _ pflag.Value = (*layoutValue)(nil)

func (v *layoutValue) String() string { return string(*v) }

func (v *layoutValue) Set(s string) error {
	switch l := layoutValue(strings.ToLower(strings.TrimSpace(s))); l {
	case layoutHelp, layoutIndividual, layoutStore:
		*v = l
		return nil
	}
	return fmt.Errorf("invalid layout %q (want help, individual or store)", s)
}

func (v *layoutValue) Type() string { return "layout" }
