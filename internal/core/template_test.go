package core

import "testing"

func TestRenderString(t *testing.T) {
	t.Setenv("WARDEN_TEST_ROOT", "/opt/dcc")

	got, err := RenderString(`{{ env "WARDEN_TEST_ROOT" }}/bin/python`, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if got != "/opt/dcc/bin/python" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestRenderString_Default(t *testing.T) {
	got, err := RenderString(`{{ env "WARDEN_UNSET_VAR" | default "python3" }}`, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if got != "python3" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestRenderString_ParseError(t *testing.T) {
	if _, err := RenderString(`{{ env `, nil); err == nil {
		t.Fatal("Expected a parse error")
	}
}
