// Package i18n provides the localized player-facing messages.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when no locale is requested or the requested one is unsupported.
const DefaultLocale = "pt-BR"

// Message keys. The keys double as the en-US text.
const (
	Welcome          = "Welcome to the Mysterious Mansion!"
	StartFrom        = "Explore starting from %s."
	YouAreIn         = "You are in: %s"
	LeafReached      = "This room has no paths (leaf). Exploration ended."
	ChooseOption     = "Choose an option:"
	OptionLeft       = "  e - Go LEFT (%s)"
	OptionRight      = "  d - Go RIGHT (%s)"
	OptionExit       = "  s - Leave the exploration"
	Prompt           = "Option: "
	InputClosed      = "Input closed. Exiting."
	PlayerExited     = "Exploration ended by the player."
	LeftUnavailable  = "LEFT path unavailable. Try another option."
	RightUnavailable = "RIGHT path unavailable. Try another option."
	InvalidOption    = "Invalid option. Use 'e', 'd' or 's'."
	VisitedHeader    = "Visited rooms (in order):"
	VisitedEntry     = "  %s. %s" // index pre-formatted to avoid locale digit grouping
	PressAnyKey      = "Press any key to leave."
)

var portuguese = map[string]string{
	Welcome:          "Bem-vindo à Mansão Misteriosa!",
	StartFrom:        "Navegue a partir do %s.",
	YouAreIn:         "Você está em: %s",
	LeafReached:      "Esta sala não possui caminhos (folha). A exploração terminou.",
	ChooseOption:     "Escolha uma opção:",
	OptionLeft:       "  e - Ir para a ESQUERDA (%s)",
	OptionRight:      "  d - Ir para a DIREITA (%s)",
	OptionExit:       "  s - Sair da exploração",
	Prompt:           "Opção: ",
	InputClosed:      "Entrada encerrada. Saindo.",
	PlayerExited:     "Exploração encerrada pelo jogador.",
	LeftUnavailable:  "Caminho para ESQUERDA indisponível. Tente outra opção.",
	RightUnavailable: "Caminho para DIREITA indisponível. Tente outra opção.",
	InvalidOption:    "Opção inválida. Use 'e', 'd' ou 's'.",
	VisitedHeader:    "Salas visitadas (ordem):",
	VisitedEntry:     "  %s. %s",
	PressAnyKey:      "Pressione qualquer tecla para sair.",
}

// supported lists the available locales; the first one is the fallback.
var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var (
	matcher = language.NewMatcher(supported)
	bundle  = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for key, msg := range portuguese {
		if err := b.SetString(language.BrazilianPortuguese, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
	return b
}

// Printer formats messages for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a printer for the best supported match of locale.
// An empty locale selects DefaultLocale.
func NewPrinter(locale string) (*Printer, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, index, _ := matcher.Match(requested)
	tag := supported[index]
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(bundle)),
	}, nil
}

// Locale returns the selected locale tag.
func (p *Printer) Locale() string {
	return p.tag.String()
}

// Sprintf formats the message for key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
