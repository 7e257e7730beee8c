package i18n

var messagesEN = map[string]string{
	// Category labels and area names.
	"category.accessibility": "Accessibility",
	"category.seo":           "SEO",
	"category.design":        "Design",
	"area.accessibility":     "accessibility",
	"area.seo":               "SEO",
	"area.design":            "design and user experience",

	// Accessibility checks.
	"a11y.img_alt_missing.msg":    "{count} of {total} images are missing alt text",
	"a11y.img_alt_missing.rec":    "Add a descriptive alt attribute to every image so screen readers can convey them",
	"a11y.img_alt_all.strength":   "All {total} images have alt text",
	"a11y.lang_missing.msg":       "The html element has no lang attribute",
	"a11y.lang_missing.rec":       "Set <html lang=\"...\"> so assistive technology reads the page in the right language",
	"a11y.h1_missing.msg":         "The page has no h1 heading",
	"a11y.h1_missing.rec":         "Add a single h1 that describes the main content of the page",
	"a11y.h1_multiple.msg":        "The page has {count} h1 headings",
	"a11y.h1_multiple.rec":        "Keep one h1 per page and use h2-h6 for the rest of the hierarchy",
	"a11y.h1_single.strength":     "The page has exactly one h1 heading",
	"a11y.inputs_unlabeled.msg":   "{count} form fields lack a label",
	"a11y.inputs_unlabeled.rec":   "Connect every input to a <label> or give it an aria-label",
	"a11y.links_empty.msg":        "{count} links or buttons have no accessible name",
	"a11y.links_empty.rec":        "Give icon links and buttons visible text or an aria-label",
	"a11y.links_generic.msg":      "{count} links use generic text such as \"click here\"",
	"a11y.links_generic.rec":      "Write link text that describes the destination",
	"a11y.main_missing.msg":       "No main landmark was found",
	"a11y.main_missing.rec":       "Wrap the primary content in a <main> element",
	"a11y.main_present.strength":  "The primary content is wrapped in a main landmark",

	// SEO checks.
	"seo.title_missing.msg":      "The page has no title tag",
	"seo.title_missing.rec":      "Add a unique, descriptive title of 30-60 characters",
	"seo.title_length.msg":       "The title is {length} characters (recommended 30-60)",
	"seo.title_length.rec":       "Adjust the title length so it displays fully in search results",
	"seo.meta_desc_missing.msg":  "The page has no meta description",
	"seo.meta_desc_missing.rec":  "Add a meta description of 70-160 characters that summarizes the page",
	"seo.meta_desc_length.msg":   "The meta description is {length} characters (recommended 70-160)",
	"seo.meta_desc_length.rec":   "Adjust the meta description so search engines show it uncut",
	"seo.h1_missing.msg":         "No h1 heading was found on the page",
	"seo.h1_missing.rec":         "Add an h1 containing the page's most important keyword",
	"seo.h1_multiple.msg":        "The page has {count} h1 headings",
	"seo.h1_multiple.rec":        "Use a single h1 so search engines understand the main topic",
	"seo.viewport_missing.msg":   "The viewport meta tag is missing",
	"seo.viewport_missing.rec":   "Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">",
	"seo.https_missing.msg":      "The page is not served over https",
	"seo.https_missing.rec":      "Install a TLS certificate and redirect all traffic to https",
	"seo.img_alt_missing.msg":    "{count} images are missing alt text, which hides them from image search",
	"seo.img_alt_missing.rec":    "Add alt attributes with relevant keywords where natural",
	"seo.robots_missing.msg":     "robots.txt was not found",
	"seo.robots_missing.rec":     "Publish a robots.txt so crawlers know what to index",
	"seo.sitemap_missing.msg":    "No XML sitemap was found",
	"seo.sitemap_missing.rec":    "Publish a sitemap.xml and reference it from robots.txt",
	"seo.canonical_missing.msg":  "The page has no canonical link",
	"seo.canonical_missing.rec":  "Add <link rel=\"canonical\"> to avoid duplicate-content issues",
	"seo.og_missing.msg":         "Open Graph tags are missing",
	"seo.og_missing.rec":         "Add og:title, og:description and og:image for better link previews",

	// Design checks.
	"design.viewport_missing.msg": "The viewport meta tag is missing, so the page does not scale on mobile",
	"design.viewport_missing.rec": "Add a viewport meta tag to make the layout responsive",
	"design.load_slow.msg":        "The page load time is {seconds}s",
	"design.load_slow.rec":        "Compress images, minify assets and enable caching to cut the load time",
	"design.nav_missing.msg":      "No navigation landmark was found",
	"design.nav_missing.rec":      "Add a <nav> element with the site's main links",
	"design.cta_missing.msg":      "No clear call-to-action was found",
	"design.cta_missing.rec":      "Add a prominent button or contact link above the fold",
	"design.img_dimensions.msg":   "{count} images lack width and height attributes",
	"design.img_dimensions.rec":   "Set width and height on images to avoid layout shifts while loading",
	"design.dom_size.msg":         "The page contains {count} DOM elements, which can make rendering sluggish",
	"design.dom_size.rec":         "Simplify the markup and remove wrapper elements that serve no purpose",
	"design.favicon_missing.msg":  "The page has no favicon",
	"design.favicon_missing.rec":  "Add a favicon so the site is recognizable in tabs and bookmarks",
	"design.footer_missing.msg":   "No footer was found",
	"design.footer_missing.rec":   "Add a footer with contact details and key links",

	// External audit findings.
	"audit.lcp_slow.msg":          "Slow loading: Largest Contentful Paint is {seconds}s (target < 2.5s)",
	"audit.lcp_slow.rec":          "Optimize the largest visible element, typically the hero image, and its delivery",
	"audit.tbt_high.msg":          "Total Blocking Time is {ms}ms (target < 600ms)",
	"audit.tbt_high.rec":          "Split long JavaScript tasks and defer scripts that are not critical",
	"audit.cls_high.msg":          "Cumulative Layout Shift is {value} (target < 0.1)",
	"audit.cls_high.rec":          "Reserve space for images, ads and embeds so content does not jump",
	"audit.speed_index.msg":       "Speed Index is {seconds}s, so the page renders its content slowly",
	"audit.speed_index.rec":       "Prioritize above-the-fold content and inline critical CSS",
	"audit.mobile_unfriendly.msg": "The external audit flags the page as not mobile-friendly",
	"audit.mobile_unfriendly.rec": "Use responsive layout, readable font sizes and adequate tap targets",

	// Overview summary tiers.
	"overview.excellent":       "Excellent! The site scores {score} of 100. Its strongest area is {strongest} ({strongestScore} points).",
	"overview.excellent_focus": "Excellent! The site scores {score} of 100. Its strongest area is {strongest} ({strongestScore} points). To reach the top, focus on {weakest} ({weakestScore} points).",
	"overview.good_clean":      "Good work! The site scores {score} of 100 with no critical issues. The area with most room for improvement is {weakest} ({weakestScore} points).",
	"overview.good_issues":     "Good foundation! The site scores {score} of 100, but {critical} critical issues hold it back. Start with {weakest} ({weakestScore} points).",
	"overview.ok":              "The site scores {score} of 100. There is clear improvement potential, especially within {weakest} ({weakestScore} points).",
	"overview.ok_many":         "The site scores {score} of 100 and has {critical} critical issues. Addressing {weakest} ({weakestScore} points) would make the biggest difference.",
	"overview.poor":            "The site scores {score} of 100 and needs attention. {strongest} is the strongest area; begin the work within {weakest} ({weakestScore} points).",
	"overview.poor_many":       "The site scores {score} of 100 with {critical} critical issues. A broad overhaul is recommended, starting with {weakest} ({weakestScore} points).",

	// Quick wins.
	"quickwin.img_alt":        "Add alt text to images that lack it",
	"quickwin.title":          "Write a descriptive page title of 30-60 characters",
	"quickwin.meta_desc":      "Add a meta description that summarizes the page",
	"quickwin.viewport":       "Add a viewport meta tag for mobile scaling",
	"quickwin.lang":           "Set the lang attribute on the html element",
	"quickwin.h1":             "Give the page a single clear h1 heading",
	"quickwin.https":          "Move the site to https with a TLS certificate",
	"quickwin.labels":         "Attach labels to all form fields",
	"quickwin.link_text":      "Replace generic link text with descriptive wording",
	"quickwin.robots":         "Publish a robots.txt file",
	"quickwin.sitemap":        "Publish an XML sitemap",
	"quickwin.cta":            "Add a prominent call-to-action button",
	"quickwin.navigation":     "Add a navigation menu with the site's key pages",
	"quickwin.load":           "Compress images to shorten the load time",
	"quickwin.img_dimensions": "Set width and height on images to stop layout shifts",
	"quickwin.favicon":        "Add a favicon",
}
