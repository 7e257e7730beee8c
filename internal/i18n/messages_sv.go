package i18n

var messagesSV = map[string]string{
	"category.accessibility": "Tillgänglighet",
	"category.seo":           "SEO",
	"category.design":        "Design",
	"area.accessibility":     "tillgänglighet",
	"area.seo":               "SEO",
	"area.design":            "design och användarupplevelse",

	"a11y.img_alt_missing.msg":   "{count} av {total} bilder saknar alt-text",
	"a11y.img_alt_missing.rec":   "Lägg till ett beskrivande alt-attribut på varje bild så att skärmläsare kan förmedla dem",
	"a11y.img_alt_all.strength":  "Alla {total} bilder har alt-text",
	"a11y.lang_missing.msg":      "Html-elementet saknar lang-attribut",
	"a11y.lang_missing.rec":      "Sätt <html lang=\"sv\"> så att hjälpmedel läser sidan på rätt språk",
	"a11y.h1_missing.msg":        "Sidan saknar h1-rubrik",
	"a11y.h1_missing.rec":        "Lägg till en enda h1 som beskriver sidans huvudinnehåll",
	"a11y.h1_multiple.msg":       "Sidan har {count} h1-rubriker",
	"a11y.h1_multiple.rec":       "Behåll en h1 per sida och använd h2-h6 för resten av hierarkin",
	"a11y.h1_single.strength":    "Sidan har exakt en h1-rubrik",
	"a11y.inputs_unlabeled.msg":  "{count} formulärfält saknar etikett (label)",
	"a11y.inputs_unlabeled.rec":  "Koppla varje fält till en <label> eller ge det ett aria-label",
	"a11y.links_empty.msg":       "{count} länkar eller knappar saknar tillgängligt namn",
	"a11y.links_empty.rec":       "Ge ikonlänkar och knappar synlig text eller ett aria-label",
	"a11y.links_generic.msg":     "{count} länkar använder generisk text som \"klicka här\"",
	"a11y.links_generic.rec":     "Skriv länktexter som beskriver målet",
	"a11y.main_missing.msg":      "Inget main-landmärke hittades",
	"a11y.main_missing.rec":      "Omslut huvudinnehållet med ett <main>-element",
	"a11y.main_present.strength": "Huvudinnehållet är omslutet av ett main-landmärke",

	"seo.title_missing.msg":     "Sidan saknar title-tagg",
	"seo.title_missing.rec":     "Lägg till en unik, beskrivande title på 30-60 tecken",
	"seo.title_length.msg":      "Title-taggen är {length} tecken (rekommenderat 30-60)",
	"seo.title_length.rec":      "Justera titelns längd så att den visas i sin helhet i sökresultaten",
	"seo.meta_desc_missing.msg": "Sidan saknar meta description",
	"seo.meta_desc_missing.rec": "Lägg till en meta description på 70-160 tecken som sammanfattar sidan",
	"seo.meta_desc_length.msg":  "Meta description är {length} tecken (rekommenderat 70-160)",
	"seo.meta_desc_length.rec":  "Justera längden så att sökmotorer visar hela beskrivningen",
	"seo.h1_missing.msg":        "Ingen h1-rubrik hittades på sidan",
	"seo.h1_missing.rec":        "Lägg till en h1 som innehåller sidans viktigaste sökord",
	"seo.h1_multiple.msg":       "Sidan har {count} h1-rubriker",
	"seo.h1_multiple.rec":       "Använd en enda h1 så att sökmotorer förstår huvudämnet",
	"seo.viewport_missing.msg":  "Viewport-metataggen saknas",
	"seo.viewport_missing.rec":  "Lägg till <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">",
	"seo.https_missing.msg":     "Sidan serveras inte över https",
	"seo.https_missing.rec":     "Installera ett TLS-certifikat och omdirigera all trafik till https",
	"seo.img_alt_missing.msg":   "{count} bilder saknar alt-text, vilket döljer dem för bildsök",
	"seo.img_alt_missing.rec":   "Lägg till alt-attribut med relevanta sökord där det känns naturligt",
	"seo.robots_missing.msg":    "robots.txt hittades inte",
	"seo.robots_missing.rec":    "Publicera en robots.txt så att sökmotorer vet vad som ska indexeras",
	"seo.sitemap_missing.msg":   "Ingen XML-sitemap hittades",
	"seo.sitemap_missing.rec":   "Publicera en sitemap.xml och referera till den från robots.txt",
	"seo.canonical_missing.msg": "Sidan saknar canonical-länk",
	"seo.canonical_missing.rec": "Lägg till <link rel=\"canonical\"> för att undvika duplicerat innehåll",
	"seo.og_missing.msg":        "Open Graph-taggar saknas",
	"seo.og_missing.rec":        "Lägg till og:title, og:description och og:image för bättre länkdelningar",

	"design.viewport_missing.msg": "Viewport-metataggen saknas, så sidan skalar inte på mobil",
	"design.viewport_missing.rec": "Lägg till en viewport-metatagg för responsiv layout",
	"design.load_slow.msg":        "Sidans laddningstid är {seconds}s",
	"design.load_slow.rec":        "Komprimera bilder, minifiera resurser och aktivera cachning för kortare laddningstid",
	"design.nav_missing.msg":      "Inget navigationslandmärke hittades",
	"design.nav_missing.rec":      "Lägg till ett <nav>-element med webbplatsens viktigaste länkar",
	"design.cta_missing.msg":      "Ingen tydlig call-to-action hittades",
	"design.cta_missing.rec":      "Lägg till en framträdande knapp eller kontaktlänk högt upp på sidan",
	"design.img_dimensions.msg":   "{count} bilder saknar width- och height-attribut",
	"design.img_dimensions.rec":   "Ange width och height på bilder för att undvika layoutskiften vid laddning",
	"design.dom_size.msg":         "Sidan innehåller {count} DOM-element, vilket kan göra renderingen trög",
	"design.dom_size.rec":         "Förenkla markupen och ta bort omslagselement som inte fyller någon funktion",
	"design.favicon_missing.msg":  "Sidan saknar favicon",
	"design.favicon_missing.rec":  "Lägg till en favicon så att webbplatsen känns igen i flikar och bokmärken",
	"design.footer_missing.msg":   "Ingen footer hittades",
	"design.footer_missing.rec":   "Lägg till en footer med kontaktuppgifter och viktiga länkar",

	"audit.lcp_slow.msg":          "Långsam laddning: Largest Contentful Paint är {seconds}s (mål < 2.5s)",
	"audit.lcp_slow.rec":          "Optimera det största synliga elementet, ofta hjältebilden, och dess leverans",
	"audit.tbt_high.msg":          "Total Blocking Time är {ms}ms (mål < 600ms)",
	"audit.tbt_high.rec":          "Dela upp långa JavaScript-uppgifter och skjut upp skript som inte är kritiska",
	"audit.cls_high.msg":          "Cumulative Layout Shift är {value} (mål < 0.1)",
	"audit.cls_high.rec":          "Reservera utrymme för bilder, annonser och inbäddningar så att innehållet inte hoppar",
	"audit.speed_index.msg":       "Speed Index är {seconds}s, så sidan renderar sitt innehåll långsamt",
	"audit.speed_index.rec":       "Prioritera innehållet ovanför vecket och inline:a kritisk CSS",
	"audit.mobile_unfriendly.msg": "Den externa granskningen flaggar sidan som inte mobilanpassad",
	"audit.mobile_unfriendly.rec": "Använd responsiv layout, läsbara teckenstorlekar och tillräckligt stora tryckytor",

	"overview.excellent":       "Utmärkt! Webbplatsen får {score} av 100 poäng. Starkast är {strongest} ({strongestScore} poäng).",
	"overview.excellent_focus": "Utmärkt! Webbplatsen får {score} av 100 poäng. Starkast är {strongest} ({strongestScore} poäng). För att nå hela vägen, fokusera på {weakest} ({weakestScore} poäng).",
	"overview.good_clean":      "Bra jobbat! Webbplatsen får {score} av 100 poäng utan kritiska problem. Störst förbättringspotential finns inom {weakest} ({weakestScore} poäng).",
	"overview.good_issues":     "Bra grund! Webbplatsen får {score} av 100 poäng, men {critical} kritiska problem håller den tillbaka. Börja med {weakest} ({weakestScore} poäng).",
	"overview.ok":              "Webbplatsen får {score} av 100 poäng. Det finns tydlig förbättringspotential, särskilt inom {weakest} ({weakestScore} poäng).",
	"overview.ok_many":         "Webbplatsen får {score} av 100 poäng och har {critical} kritiska problem. Att åtgärda {weakest} ({weakestScore} poäng) gör störst skillnad.",
	"overview.poor":            "Webbplatsen får {score} av 100 poäng och behöver ses över. {strongest} är starkast; börja arbetet inom {weakest} ({weakestScore} poäng).",
	"overview.poor_many":       "Webbplatsen får {score} av 100 poäng med {critical} kritiska problem. En bred översyn rekommenderas, med start inom {weakest} ({weakestScore} poäng).",

	"quickwin.img_alt":        "Lägg till alt-text på bilder som saknar det",
	"quickwin.title":          "Skriv en beskrivande sidtitel på 30-60 tecken",
	"quickwin.meta_desc":      "Lägg till en meta description som sammanfattar sidan",
	"quickwin.viewport":       "Lägg till en viewport-metatagg för mobil skalning",
	"quickwin.lang":           "Sätt lang-attributet på html-elementet",
	"quickwin.h1":             "Ge sidan en enda tydlig h1-rubrik",
	"quickwin.https":          "Flytta webbplatsen till https med ett TLS-certifikat",
	"quickwin.labels":         "Koppla etiketter till alla formulärfält",
	"quickwin.link_text":      "Ersätt generiska länktexter med beskrivande formuleringar",
	"quickwin.robots":         "Publicera en robots.txt-fil",
	"quickwin.sitemap":        "Publicera en XML-sitemap",
	"quickwin.cta":            "Lägg till en framträdande call-to-action-knapp",
	"quickwin.navigation":     "Lägg till en navigationsmeny med webbplatsens viktigaste sidor",
	"quickwin.load":           "Komprimera bilder för att korta laddningstiden",
	"quickwin.img_dimensions": "Ange width och height på bilder för att stoppa layoutskiften",
	"quickwin.favicon":        "Lägg till en favicon",
}
