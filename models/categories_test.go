package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCategoriesScan(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
		want Categories
	}{
		{"json text", `["Italian","Pizza"]`, Categories{"Italian", "Pizza"}},
		{"bytes", []byte(`["Thai"]`), Categories{"Thai"}},
		{"null column", nil, Categories{}},
		{"json null", "null", Categories{}},
		{"malformed", `["Italian",`, Categories{}},
		{"not a list", `{"a":1}`, Categories{}},
		{"plain string", `Italian`, Categories{}},
		{"mixed types", `["Italian", 3]`, Categories{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Categories
			if err := c.Scan(tc.src); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if !reflect.DeepEqual(c, tc.want) {
				t.Fatalf("got %#v, want %#v", c, tc.want)
			}
		})
	}
}

func TestCategoriesScanUnsupportedType(t *testing.T) {
	var c Categories
	if err := c.Scan(42); err == nil {
		t.Fatal("expected error for int column")
	}
}

func TestCategoriesValue(t *testing.T) {
	v, err := Categories{"Italian", "Pizza"}.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != `["Italian","Pizza"]` {
		t.Fatalf("Value = %v", v)
	}

	v, err = Categories(nil).Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != `[]` {
		t.Fatalf("nil Value = %v", v)
	}
}

func TestCategoriesMarshalNilAsEmptyList(t *testing.T) {
	b, err := json.Marshal(Business{})
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	list, ok := out["categories"].([]interface{})
	if !ok || len(list) != 0 {
		t.Fatalf("categories = %#v, want []", out["categories"])
	}
}
