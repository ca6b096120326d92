package conversation

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantName   string
		wantParams map[string]string
	}{
		{"detail with pid", "action=detail&pid=p42", ActionDetail, map[string]string{"pid": "p42"}},
		{"book pick", "action=book_pick&pid=p7", ActionBookPick, map[string]string{"pid": "p7"}},
		{"cancel with bid", "action=cancel&bid=ab12cd34", ActionCancel, map[string]string{"bid": "ab12cd34"}},
		{"browse with cursor and filters", "action=browse&cursor=9&area=thonglor", ActionBrowse, map[string]string{"cursor": "9", "area": "thonglor"}},
		{"malformed pair skipped", "action=browse&cursor", ActionBrowse, map[string]string{}},
		{"no action key", "pid=p1", "", map[string]string{"pid": "p1"}},
		{"empty string", "", "", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseAction(tt.data)
			if a.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", a.Name, tt.wantName)
			}
			if len(a.Params) != len(tt.wantParams) {
				t.Fatalf("Params = %v, want %v", a.Params, tt.wantParams)
			}
			for k, v := range tt.wantParams {
				if a.Params[k] != v {
					t.Errorf("Params[%q] = %q, want %q", k, a.Params[k], v)
				}
			}
		})
	}
}

func TestEncodeActionRoundTrip(t *testing.T) {
	data := EncodeAction(ActionBrowse, "cursor", "9", "area", "thonglor", "price_max", "30000")
	if data != "action=browse&cursor=9&area=thonglor&price_max=30000" {
		t.Fatalf("EncodeAction = %q", data)
	}
	a := ParseAction(data)
	if a.Name != ActionBrowse || a.Params["cursor"] != "9" || a.Params["area"] != "thonglor" || a.Params["price_max"] != "30000" {
		t.Fatalf("round trip lost data: %+v", a)
	}
}
