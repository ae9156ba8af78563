package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

// Platform describes one review site as data: where to search, how to reach
// the first result, how to open the reviews section, and where review text
// lives. Adding a platform means adding a record here, not a code path.
type Platform struct {
	Source domain.Source

	// SearchURLTemplate carries one %s for the percent-encoded shop name.
	SearchURLTemplate string

	// QuerySuffix is appended to the shop name before encoding. Google Maps
	// needs a locality hint to avoid worldwide matches.
	QuerySuffix string

	// ResultSelectors are tried in order; the first present element is the
	// business page link. Tolerates markup variants across verticals.
	ResultSelectors []string

	// TabSelectors locate the reviews tab. Empty or absent is fine: some
	// platforms show reviews inline.
	TabSelectors []string

	// ReviewSelectors are candidate locations of review text, in order.
	ReviewSelectors []string

	// ScrollRounds is how many scroll-to-bottom passes to run to surface
	// lazily loaded reviews.
	ScrollRounds int
}

// SearchURL builds the platform search URL for shopName.
func (p Platform) SearchURL(shopName string) string {
	q := strings.TrimSpace(shopName) + p.QuerySuffix
	return fmt.Sprintf(p.SearchURLTemplate, url.PathEscape(q))
}

// Builtin returns the supported platforms in their fixed invocation order.
// The order is load-bearing: the aggregator's merge order follows it.
func Builtin(scrollRounds int) []Platform {
	if scrollRounds <= 0 {
		scrollRounds = 3
	}
	return []Platform{
		{
			Source:            domain.SourceNaver,
			SearchURLTemplate: "https://m.place.naver.com/search/%s",
			ResultSelectors: []string{
				`a[href*="/restaurant/"]`,
				`a[href*="/cafe/"]`,
				`a[href*="/hairshop/"]`,
			},
			TabSelectors: []string{
				`//a[contains(., '리뷰')]`,
				`a[role="tab"][href*="review"]`,
			},
			ReviewSelectors: []string{
				".pui__vn15t2 span",
				".pui__xtsQN-",
			},
			ScrollRounds: scrollRounds,
		},
		{
			Source:            domain.SourceKakao,
			SearchURLTemplate: "https://m.map.kakao.com/actions/searchView?q=%s",
			ResultSelectors: []string{
				`a[href*="place.map.kakao.com"]`,
				`.search_item .tit_name`,
			},
			TabSelectors: []string{
				`//a[contains(., '후기')]`,
			},
			ReviewSelectors: []string{
				".txt_comment span",
				".list_review .desc_review",
			},
			ScrollRounds: scrollRounds,
		},
		{
			Source:            domain.SourceGoogle,
			SearchURLTemplate: "https://www.google.com/maps/search/%s",
			QuerySuffix:       " 서울",
			ResultSelectors: []string{
				`a[href*="/maps/place/"]`,
			},
			TabSelectors: []string{
				`button[aria-label*="리뷰"]`,
				`button[aria-label*="review"]`,
			},
			ReviewSelectors: []string{
				".wiI7pd",
				".MyEned",
			},
			ScrollRounds: scrollRounds,
		},
	}
}
