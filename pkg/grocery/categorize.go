package grocery

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Store categories, in section order. CategoryOther is the fallback for
// anything the rule table does not recognize.
const (
	CategoryFromagerie     = "Fromagerie"
	CategoryCremerie       = "Crèmerie"
	CategoryPetitDejeuner  = "Petit-déjeuner"
	CategoryFruitsLegumes  = "Fruits/Légumes"
	CategoryBoulangerie    = "Boulangerie"
	CategoryCharcuterie    = "Charcuterie"
	CategoryTraiteur       = "Traiteur"
	CategoryEpicerieSalee  = "Épicerie salée"
	CategoryPoissonnerie   = "Poissonnerie"
	CategoryBoucherie      = "Boucherie"
	CategoryJusFrais       = "Jus frais"
	CategoryBoissons       = "Boissons"
	CategorySurgeles       = "Surgelés"
	CategoryEpicerieSucree = "Épicerie sucrée"
	CategoryDroguerie      = "Droguerie"
	CategoryParfumerie     = "Parfumerie"
	CategoryHygiene        = "Hygiène"
	CategoryBebe           = "Bébé"
	CategoryAnimaux        = "Animaux"
	CategoryVrac           = "Vrac"
	CategoryTextile        = "Textile"
	CategoryBazar          = "Bazar"
	CategoryOther          = "Autre"
)

// NormalizeName lowercases a name and strips diacritics (NFD decomposition,
// combining marks removed) so "Crème" and "creme" match the same rules.
func NormalizeName(s string) string {
	lower := strings.ToLower(s)
	decomposed := norm.NFD.String(lower)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// rule is one entry of the ordered dispatch table: the first rule whose
// pattern matches (and whose exclusion, if any, does not) decides the
// category. Patterns are written against normalized names, so they carry no
// accents themselves. strip removes a phrase before matching, which stands in
// for a negative lookahead: "fromage blanc" must not trigger Fromagerie, but
// "camembert et fromage blanc" still should via camembert.
type rule struct {
	category string
	match    *regexp.Regexp
	exclude  *regexp.Regexp
	strip    *regexp.Regexp
}

// rules is evaluated top to bottom; order is load-bearing. "fromage blanc"
// must fall through Fromagerie into Crèmerie, "jus frais" must be taken
// before the generic jus of Boissons, and "pain de mie" belongs to the
// breakfast shelf rather than Boulangerie.
var rules = []rule{
	{
		category: CategoryFromagerie,
		match:    regexp.MustCompile(`\b(fromage|comte|emmental|gruyere|mozzarella|cheddar|parmesan|feta|raclette|camembert|brie|roquefort|tomme|reblochon|cantal|bleu\s*d'auvergne|chevre)\b`),
		strip:    regexp.MustCompile(`fromage\s*blanc`),
	},
	{
		category: CategoryCremerie,
		match:    regexp.MustCompile(`\b(lait|yaourt|yogourt|skyr|fromage\s*blanc|petit\s*suisse|beurre|creme(\s*fraiche)?|mascarpone|oeufs?)\b`),
	},
	{
		category: CategoryPetitDejeuner,
		match:    regexp.MustCompile(`\b(cereales?|muesli|granola|biscottes?|pain\s*de\s*mie|confiture|miel|pate\s*a\s*tartiner|nutella|sirop\s*d'?erable|pancakes?|crepes?)\b`),
	},
	{
		category: CategoryFruitsLegumes,
		match:    regexp.MustCompile(`\b(pomme|poire|banane|fraise|framboise|myrtille|raisin|orange|citron|clementine|kiwi|mangue|ananas|melon|pasteque|tomate|salade|laitue|carotte|oignon|echalote|ail|avocat|poivron|concombre|courgette|aubergine|brocoli|chou(\s*fleur)?|epinard|champignon|pomme\s*de\s*terre|patate\s*douce|persil|coriandre|basilic|fraiche\s*decoupe)\b`),
	},
	{
		category: CategoryBoulangerie,
		match:    regexp.MustCompile(`\b(pain|baguette|brioche|croissant|wrap|tortilla|pita|naan)\b`),
	},
	{
		category: CategoryCharcuterie,
		match:    regexp.MustCompile(`\b(charcuterie|jambon|saucisson|rosette|chorizo|mortadelle|rillettes?|pate|boudin|pastrami)\b`),
	},
	{
		category: CategoryTraiteur,
		match:    regexp.MustCompile(`\b(traiteur|plats?\s*prepares?|salades?\s*composees?|houmous|tapenade|tzatziki|tabou(l|leh)|wraps?|sandwich(es)?|sushis?|makis?|nems?|samoussas?|falafels?|quiches?|pizzas?\s*fraiches?|lasagnes?\s*fraiches?|poulet\s*roti)\b`),
	},
	{
		category: CategoryEpicerieSalee,
		match:    regexp.MustCompile(`\b(pates|spaghetti|penne|fusilli|farfalle|riz|basmati|thai|semoule|quinoa|couscous|lentilles|pois\s*chiches|haricots?(\s*(rouges|blancs))?|mais|tomates?(\s*(pelees|concassees))?|coulis|sauce\s*tomate|pesto|bouillon|cube|sel|poivre|epices|curry|paprika|huile(\s*(d'olive|de\s*tournesol|de\s*colza))?|vinaigre|moutarde|mayonnaise|ketchup|cornichons|olives|thon(\s*en\s*conserve)?|conserve)\b`),
	},
	{
		category: CategoryPoissonnerie,
		match:    regexp.MustCompile(`\b(thon|saumon|cabillaud|colin|dorade|lotte|maquereau|sardine|truite|crevettes?|moules?|huitres?|calamars?)\b`),
	},
	{
		category: CategoryBoucherie,
		match:    regexp.MustCompile(`\b(steak|steack|poulet|dinde|boeuf|veau|porc|saucisses?|merguez|bacon|lardons|viande\s*hachee|kefta|steak\s*hache|escalope|roti)\b`),
	},
	{
		category: CategoryJusFrais,
		match:    regexp.MustCompile(`\b(jus\s*(frais|presse\s*a\s*froid)|cold-?pressed)\b`),
	},
	{
		category: CategoryBoissons,
		match:    regexp.MustCompile(`\b(eau|soda|jus|biere|vin|cafe|the|infusion|limonade|energy\s*drink|boisson\s*energetique)\b`),
		exclude:  regexp.MustCompile(`jus\s*frais`),
	},
	{
		category: CategorySurgeles,
		match:    regexp.MustCompile(`\b(surgeles?|congele|frites?\s*surgelees?|legumes?\s*surgeles?|fruits?\s*surgeles?|poisson\s*pane|nuggets?|pizza\s*surgelee|glaces?|esquimaux|sorbets?|lasagnes?\s*surgelees?)\b`),
	},
	{
		category: CategoryEpicerieSucree,
		match:    regexp.MustCompile(`\b(biscuits?|gateaux?|chocolat|sucre(\s*(blond|roux))?|farine|confiture|miel|pate\s*a\s*tartiner|cereales|compote|sirop|preparation\s*dessert|levure\s*(chimique|boulangere)|sucre\s*vanille|pepites?\s*de\s*chocolat|noisettes?|amandes?|fruits\s*secs|raisins?\s*secs|noix|praline)\b`),
	},
	{
		category: CategoryDroguerie,
		match:    regexp.MustCompile(`\b(produits?\s*menagers?|nettoyants?|detergents?|lessive|adoucissant|liquide\s*vaisselle|pastilles?\s*lave-vaisselle|eponges?|serpilliere|balais?|brosses?|sacs?\s*poubelle|alu|film\s*etirable|papier\s*cuisson|cirage)\b`),
	},
	{
		category: CategoryParfumerie,
		match:    regexp.MustCompile(`\b(cosmetiques?|maquillage|fond\s*de\s*teint|mascara|rouge\s*a\s*levres|parfums?|eau\s*de\s*toilette|lotion|creme\s*visage|soins?\s*du\s*corps|shampoo?ing|apres\s*shampoo?ing|teinture|coloration|gel\s*coiffant|deodorant)\b`),
	},
	{
		category: CategoryHygiene,
		match:    regexp.MustCompile(`\b(savon|gel\s*douche|dentifrice|brosse\s*a\s*dents|fil\s*dentaire|bain\s*de\s*bouche|papier\s*toilette|essuie-?tout|sopalin|mouchoirs?|rasoirs?|lames?\s*de\s*rasoir|coton-?tiges?|cotons?|serviettes?\s*hygieniques?|tampons?)\b`),
	},
	{
		category: CategoryBebe,
		match:    regexp.MustCompile(`\b(couches?|pampers|lingettes?\s*bebe|petits?\s*pots?|lait\s*infantile|lait\s*(1er|2e)\s*age|compotes?\s*bebe|cereales?\s*bebe|biberons?|tetines?|liniment)\b`),
	},
	{
		category: CategoryAnimaux,
		match:    regexp.MustCompile(`\b(croquettes?|patee|friandises?\s*(chien|chat)s?|litiere|bac\s*a\s*litiere|sacs?\s*litiere|boites?\s*(chien|chat)s?)\b`),
	},
	{
		category: CategoryVrac,
		match:    regexp.MustCompile(`\b((en\s*)?vrac|graines?\s*en\s*vrac|cereales?\s*en\s*vrac|fruits\s*secs?\s*en\s*vrac|pates?\s*en\s*vrac)\b`),
	},
	{
		category: CategoryTextile,
		match:    regexp.MustCompile(`\b(vetements?|t-?shirt|pantalons?|chaussettes?|chaussures?|chaussons?|lingerie|culottes?|soutiens?-?gorge|linge\s*de\s*maison|draps?|serviettes?|torchons?)\b`),
	},
	{
		category: CategoryBazar,
		match:    regexp.MustCompile(`\b(quincaillerie|bricolage|vis|marteau|tournevis|adhesif|ruban|accessoires?\s*auto|huile\s*moteur|lave-?glace|essuie-?glace|electromenager|jouets?|papeterie|librairie|decoration|vaisselle\s*jetable|jardinage|loisirs|bagagerie|valises?)\b`),
	},
}

// InferCategory maps a free-text item name to a store category. Pure and
// deterministic; unknown names land in Autre, never an error.
func InferCategory(name string) string {
	n := NormalizeName(name)
	for _, r := range rules {
		candidate := n
		if r.strip != nil {
			candidate = r.strip.ReplaceAllString(candidate, "")
		}
		if !r.match.MatchString(candidate) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(candidate) {
			continue
		}
		return r.category
	}
	return CategoryOther
}
