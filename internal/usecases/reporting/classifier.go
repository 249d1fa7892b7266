package reporting

import (
	"strings"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// Palavras-chave de classificação de produto. As de IA são avaliadas
// primeiro; os dois conjuntos são disjuntos por construção.
var (
	iaKeywords = []string{
		"ia club",
		"gestor de ia",
		"formação gestor de ia",
	}

	programmingKeywords = []string{
		"devclub",
		"full stack",
		"vitalício",
		"vitalicio",
	}
)

// Classify mapeia o nome livre do produto para a categoria do painel.
// Pura e determinística: é usada tanto na classificação ao vivo quanto na
// reclassificação retroativa das visões comparativas. Nome vazio ou sem
// correspondência cai em PROGRAMMING.
func Classify(productName string) domain.Category {
	name := strings.ToLower(productName)

	for _, keyword := range iaKeywords {
		if strings.Contains(name, keyword) {
			return domain.CategoryIA
		}
	}

	for _, keyword := range programmingKeywords {
		if strings.Contains(name, keyword) {
			return domain.CategoryProgramming
		}
	}

	return domain.CategoryProgramming
}
