package enrich

// valence is an AFINN-style word list: each entry maps a lowercase token to an
// integer score in [-5, 5]. The scorer sums matches over a text; no stemming,
// no negation handling. The list is a trimmed set covering the vocabulary that
// actually shows up in video titles and descriptions.
var valence = map[string]int{
	"abandon":      -2,
	"abuse":        -3,
	"accident":     -2,
	"achieve":      2,
	"admire":       3,
	"adorable":     3,
	"adventure":    2,
	"afraid":       -2,
	"aggressive":   -2,
	"alive":        1,
	"amazing":      4,
	"angry":        -3,
	"annoying":     -2,
	"anxious":      -2,
	"apology":      -1,
	"appreciate":   2,
	"argue":        -2,
	"attack":       -1,
	"awesome":      4,
	"awful":        -3,
	"bad":          -3,
	"ban":          -2,
	"battle":       -1,
	"beautiful":    3,
	"best":         3,
	"betray":       -3,
	"bless":        2,
	"boring":       -3,
	"brave":        2,
	"breathtaking": 5,
	"brilliant":    4,
	"broke":        -2,
	"broken":       -1,
	"calm":         2,
	"cancel":       -1,
	"celebrate":    3,
	"champion":     2,
	"chaos":        -2,
	"charming":     3,
	"cheat":        -3,
	"cheerful":     2,
	"clash":        -2,
	"clean":        2,
	"clever":       2,
	"collapse":     -2,
	"comfort":      2,
	"confident":    2,
	"confused":     -2,
	"cool":         1,
	"crash":        -2,
	"crazy":        -2,
	"creative":     2,
	"crisis":       -3,
	"cruel":        -3,
	"cry":          -1,
	"curious":      1,
	"cute":         2,
	"damage":       -3,
	"danger":       -2,
	"dead":         -3,
	"defeat":       -2,
	"delight":      3,
	"depressed":    -2,
	"destroy":      -3,
	"dirty":        -2,
	"disaster":     -2,
	"disgusting":   -3,
	"dishonest":    -2,
	"dream":        1,
	"dumb":         -3,
	"easy":         1,
	"elegant":      2,
	"embarrassed":  -2,
	"empower":      2,
	"enjoy":        2,
	"epic":         3,
	"evil":         -3,
	"excellent":    3,
	"excited":      3,
	"exclusive":    2,
	"fail":         -2,
	"failure":      -2,
	"fake":         -3,
	"fantastic":    4,
	"fear":         -2,
	"fight":        -1,
	"fired":        -2,
	"free":         1,
	"fresh":        1,
	"friendly":     2,
	"fun":          4,
	"funny":        4,
	"generous":     2,
	"genius":       3,
	"gift":         2,
	"glad":         3,
	"glorious":     2,
	"good":         3,
	"gorgeous":     3,
	"grateful":     3,
	"great":        3,
	"greed":        -3,
	"grief":        -2,
	"happy":        3,
	"hate":         -3,
	"haunting":     -1,
	"heal":         2,
	"hell":         -4,
	"help":         2,
	"hero":         2,
	"honest":       2,
	"hope":         2,
	"horrible":     -3,
	"horror":       -3,
	"hurt":         -2,
	"improve":      2,
	"incredible":   4,
	"innovative":   2,
	"inspire":      2,
	"interesting":  2,
	"jealous":      -2,
	"joy":          3,
	"kill":         -3,
	"kind":         2,
	"laugh":        1,
	"lazy":         -1,
	"legendary":    2,
	"lie":          -2,
	"lonely":       -2,
	"lose":         -3,
	"loss":         -3,
	"love":         3,
	"lovely":       3,
	"lucky":        3,
	"mad":          -3,
	"magic":        1,
	"masterpiece":  4,
	"mess":         -2,
	"miracle":      4,
	"miss":         -2,
	"mistake":      -2,
	"murder":       -2,
	"nasty":        -3,
	"nice":         3,
	"nightmare":    -3,
	"pain":         -2,
	"panic":        -3,
	"peace":        2,
	"perfect":      3,
	"poor":         -2,
	"popular":      3,
	"powerful":     2,
	"pretty":       1,
	"problem":      -2,
	"proud":        2,
	"rage":         -2,
	"reject":       -1,
	"relax":        2,
	"rescue":       2,
	"rich":         2,
	"risk":         -2,
	"ruin":         -2,
	"sad":          -2,
	"safe":         1,
	"scandal":      -3,
	"scared":       -2,
	"scary":        -2,
	"shame":        -2,
	"shock":        -2,
	"sick":         -2,
	"smart":        1,
	"smile":        2,
	"solution":     1,
	"sorry":        -1,
	"stolen":       -2,
	"strange":      -1,
	"stress":       -1,
	"strong":       2,
	"stunning":     4,
	"stupid":       -2,
	"success":      2,
	"support":      2,
	"sweet":        2,
	"terrible":     -3,
	"terrific":     4,
	"thank":        2,
	"threat":       -2,
	"toxic":        -3,
	"tragedy":      -2,
	"trouble":      -2,
	"trust":        1,
	"ugly":         -3,
	"unbelievable": -1,
	"useful":       2,
	"useless":      -2,
	"victory":      3,
	"violent":      -3,
	"viral":        1,
	"war":          -2,
	"warm":         1,
	"waste":        -1,
	"weak":         -2,
	"weird":        -2,
	"welcome":      2,
	"win":          4,
	"winner":       4,
	"wonderful":    4,
	"worry":        -3,
	"worst":        -3,
	"wow":          4,
	"wrong":        -2,
}
