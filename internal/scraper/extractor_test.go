package scraper

import "testing"

const markupPage = `
<html><body>
<div class="restaurant-card">
  <div class="menu-item">
    <span class="dish-name">Paneer Tikka</span>
    <span class="dish-price">250</span>
  </div>
  <div class="menu-item">
    <span class="dish-name">Veg Biryani</span>
    <span class="price">180.50</span>
  </div>
  <div class="menu-item">
    <span class="dish-name">Broken Item</span>
    <span class="dish-price">call us</span>
  </div>
  <div class="menu-item">
    <span class="dish-price">99</span>
  </div>
</div>
</body></html>`

const scriptPage = `
<html><body>
<script>
const menu = [
  { name: 'Butter Naan', category: 'Breads', basePrice: 45 },
  { name: 'Masala Dosa', category: 'South Indian', basePrice: 120.5 },
  { name: 'Burger', category: 'Fast Food', basePrice: 9.50 },
  { name: 'BURGER', category: 'Fast Food', basePrice: 11 },
];
</script>
</body></html>`

func TestExtractMarkup(t *testing.T) {
	result := Extract("Spice Route", markupPage)

	if result.Competitor != "Spice Route" {
		t.Errorf("unexpected competitor %q", result.Competitor)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(result.Items), result.Items)
	}
	if result.Items[0].DishName != "Paneer Tikka" || result.Items[0].Price != 250 {
		t.Errorf("unexpected first item %+v", result.Items[0])
	}
	if result.Items[1].DishName != "Veg Biryani" || result.Items[1].Price != 180.50 {
		t.Errorf("unexpected second item %+v", result.Items[1])
	}
}

func TestExtractInlineScript(t *testing.T) {
	result := Extract("Tandoor Hub", scriptPage)

	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items after dedup, got %d: %+v", len(result.Items), result.Items)
	}

	var burger *Item
	for i := range result.Items {
		if result.Items[i].DishName == "Burger" {
			burger = &result.Items[i]
		}
	}
	if burger == nil {
		t.Fatal("expected Burger item, first occurrence should win the dedup")
	}
	if burger.Price != 9.50 {
		t.Errorf("expected first Burger price 9.50 to win, got %v", burger.Price)
	}
}

func TestExtractMarkupWinsOverScript(t *testing.T) {
	page := markupPage + scriptPage
	result := Extract("Combined", page)

	if len(result.Items) != 2 {
		t.Fatalf("expected only markup items, got %d: %+v", len(result.Items), result.Items)
	}
	if result.Items[0].DishName != "Paneer Tikka" {
		t.Errorf("unexpected first item %+v", result.Items[0])
	}
}

func TestExtractMarkupWithoutCards(t *testing.T) {
	page := `
<html><body>
  <div class="menu-item"><span class="dish-name">Masala Dosa</span><span class="dish-price">120</span></div>
</body></html>`
	result := Extract("Bare Menu", page)
	if len(result.Items) != 1 {
		t.Fatalf("expected cardless page to parse as one container, got %+v", result.Items)
	}
	if result.Items[0].DishName != "Masala Dosa" || result.Items[0].Price != 120 {
		t.Errorf("unexpected item %+v", result.Items[0])
	}
}

func TestExtractMalformedPage(t *testing.T) {
	for _, page := range []string{"", "not html at all", "<div><span>hello"} {
		result := Extract("Broken Site", page)
		if result.Items == nil {
			t.Error("items must never be nil")
		}
		if len(result.Items) != 0 {
			t.Errorf("expected empty result for %q, got %+v", page, result.Items)
		}
	}
}

func TestExtractMarkupRequiresBareNumeric(t *testing.T) {
	page := `
<div class="restaurant-card">
  <div class="menu-item"><span class="dish-name">Fancy Thali</span><span class="dish-price">₹999</span></div>
  <div class="menu-item"><span class="dish-name">Odd Spacing</span><span class="dish-price">2 50</span></div>
  <div class="menu-item"><span class="dish-name">Plain</span><span class="dish-price"> 120.5 </span></div>
</div>`
	result := Extract("Strict Cafe", page)
	if len(result.Items) != 1 {
		t.Fatalf("decorated prices must be skipped, got %+v", result.Items)
	}
	if result.Items[0].DishName != "Plain" || result.Items[0].Price != 120.5 {
		t.Errorf("unexpected item %+v", result.Items[0])
	}
}

func TestExtractMarkupKeepsDuplicates(t *testing.T) {
	page := `
<div class="restaurant-card">
  <div class="menu-item"><span class="dish-name">Momos</span><span class="dish-price">90</span></div>
  <div class="menu-item"><span class="dish-name">Momos</span><span class="dish-price">95</span></div>
</div>`
	result := Extract("Dup Cafe", page)
	if len(result.Items) != 2 {
		t.Errorf("markup path must not dedup, got %d items", len(result.Items))
	}
}
