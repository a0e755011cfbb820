package catalog

import "testing"

func TestLookupAttr(t *testing.T) {
	spec, ok := LookupAttr("required")
	if !ok {
		t.Fatal("expected required to be in the catalog")
	}
	if spec.Kind != Boolean {
		t.Errorf("expected required to be boolean, kind is %d", spec.Kind)
	}
	if len(spec.Parents) != 3 {
		t.Errorf("expected 3 allowed parents for required, have %d", len(spec.Parents))
	}
	if _, ok = LookupAttr("frobnicate"); ok {
		t.Error("expected unknown key to miss")
	}
}

func TestGlobalAttrsHaveNoParents(t *testing.T) {
	for _, key := range []string{"id", "class", "lang", "title", "tabindex"} {
		spec, ok := LookupAttr(key)
		if !ok {
			t.Fatalf("expected %s in the catalog", key)
		}
		if len(spec.Parents) != 0 {
			t.Errorf("expected %s to attach anywhere, has %d parents", key, len(spec.Parents))
		}
	}
}

func TestSplitDashed(t *testing.T) {
	family, suffix, ok := SplitDashed("data-row")
	if !ok || family != "data" || suffix != "row" {
		t.Errorf("expected (data, row), have (%s, %s, %v)", family, suffix, ok)
	}
	family, suffix, ok = SplitDashed("data")
	if !ok || family != "data" || suffix != "" {
		t.Errorf("expected bare family key to split, have (%s, %s, %v)", family, suffix, ok)
	}
	if _, _, ok = SplitDashed("accept-charset"); ok {
		t.Error("expected plain dashed key to stay out of the families")
	}
	if _, _, ok = SplitDashed("datetime"); ok {
		t.Error("expected datetime not to split")
	}
}

func TestLookupTag(t *testing.T) {
	spec, ok := LookupTag("br")
	if !ok || !spec.Void {
		t.Errorf("expected br to be a void tag, have (%v, %v)", spec, ok)
	}
	spec, ok = LookupTag("div")
	if !ok || spec.Void {
		t.Errorf("expected div to be a normal tag, have (%v, %v)", spec, ok)
	}
	if _, ok = LookupTag("blink"); ok {
		t.Error("expected unknown tag to miss")
	}
}

func TestVoidTagsAreTags(t *testing.T) {
	for name := range voidSet {
		if !tagSet[name] {
			t.Errorf("void tag %s missing from the tag table", name)
		}
	}
}

func TestAttrParentsAreTags(t *testing.T) {
	for key, spec := range attrTable {
		for _, p := range spec.Parents {
			if !tagSet[p] {
				t.Errorf("attribute %s allows unknown parent tag %s", key, p)
			}
		}
	}
}
