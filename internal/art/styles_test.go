package art

import (
	"strings"
	"testing"
)

func TestInstruction_KnownStyles(t *testing.T) {
	for _, style := range Styles() {
		ins := Instruction(style)
		if ins == "" {
			t.Fatalf("style %q has empty instruction", style)
		}
		if !strings.HasPrefix(ins, "Transform this photo") {
			t.Fatalf("style %q instruction looks wrong: %q", style, ins)
		}
	}
}

func TestInstruction_FallbackToDefault(t *testing.T) {
	def := Instruction(DefaultStyle)
	for _, unknown := range []string{"", "cubist", "WATERCOLOR", "romantic "} {
		if got := Instruction(unknown); got != def {
			t.Fatalf("Instruction(%q) should fall back to default", unknown)
		}
	}
}
