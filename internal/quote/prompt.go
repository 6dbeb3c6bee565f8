package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/motibot/motibot/internal/email"
)

const systemPrompt = "Tu es un expert en citations motivationnelles ultra-positives et énergisantes. " +
	"Tu connais les meilleures citations de personnalités inspirantes : " +
	"Nelson Mandela, Steve Jobs, Oprah Winfrey, Albert Einstein, Maya Angelou, " +
	"Tony Robbins, Les Brown, et bien d'autres. " +
	"Tu adaptes ces citations en français de manière naturelle, énergique et ultra-positive. " +
	"Tu ne mentionnes JAMAIS de termes négatifs comme échec, difficulté, problème, obstacle, peur, doute, etc. " +
	"Tu te concentres uniquement sur la positivité, l'énergie, le succès, la force, la joie, la détermination."

// userPrompt builds the date-parameterized user instruction. The date and
// day-of-year seed the model so consecutive days get different quotes; there
// is no other de-duplication mechanism.
func userPrompt(now time.Time) string {
	return fmt.Sprintf("Nous sommes le %s (jour %d de l'année). ", email.FormatFrenchDate(now), now.YearDay()) +
		"Génère UNE SEULE citation motivationnelle ultra-positive et énergisante en français. " +
		"Contraintes strictes :\n" +
		"- Maximum 200 caractères\n" +
		"- Citation d'une personnalité célèbre (auteur, entrepreneur, leader, coach, etc.)\n" +
		"- Style ultra-positif, énergique, puissant, motivant pour démarrer la journée\n" +
		"- Format : Citation suivie de \"— Nom de l'auteur\"\n" +
		"- INTERDICTION ABSOLUE de mentionner : échec, difficulté, problème, obstacle, peur, doute, négativité, défis négatifs\n" +
		"- Seulement des messages sur : succès, force, énergie, détermination, joie, passion, victoire, excellence, croissance, possibilités infinies\n" +
		"- Exemple positif : \"Crois en tes rêves et ils se réaliseront. L'énergie suit l'intention. — Tony Robbins\"\n" +
		"- Ne pas répéter les mêmes citations chaque jour (utilise la date pour varier)\n" +
		"- Pas de guillemets autour de la citation complète\n" +
		"- 1-2 emojis énergiques si approprié (💪 ✨ 🚀 ⭐)"
}

// Sanitize trims whitespace and strips one layer of surrounding straight
// quotation marks (double first, then single) when present on both ends.
// Applying it twice yields the same result as applying it once.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
