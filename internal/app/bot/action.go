// internal/app/bot/action.go
package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of callback actions the bot understands. Tokens
// are decoded into a Kind plus structured arguments once, at the update
// boundary; handlers never re-parse callback strings.
type Kind int

const (
	KindUnknown Kind = iota

	// Stateless navigation.
	KindMainMenu
	KindHelp
	KindAllSubjects
	KindRecent

	// Browsing drill-down. Tokens carry the whole breadcrumb (subject
	// key, group, type index) so navigation never depends on the text
	// of previously rendered messages.
	KindSubject
	KindGroup
	KindMaterialType
	KindMaterial
	KindMaterialBack

	// Admin panel.
	KindAdminPanel
	KindAdminStats
	KindDetailedStats
	KindUsersStats
	KindPopularMaterials
	KindAddMaterial
	KindManageMaterials
	KindDeleteAsk
	KindDelete

	// Submission wizard.
	KindWizardSubject
	KindWizardGroup
	KindWizardType
	KindWizardBack
	KindCancel
)

// Action is a decoded callback token.
type Action struct {
	Kind Kind

	SubjectKey string // KindSubject, KindGroup, KindMaterialType, KindWizardSubject
	Group      string // KindGroup, KindWizardGroup
	TypeIndex  int    // KindMaterialType, KindWizardType
	MaterialID string // KindMaterial, KindMaterialBack, KindDeleteAsk, KindDelete
}

// Bare verbs (no argument).
const (
	tokenMainMenu         = "main_menu"
	tokenHelp             = "help"
	tokenAllSubjects      = "all_materials"
	tokenRecent           = "recent_materials"
	tokenAdminPanel       = "admin_panel"
	tokenAdminStats       = "admin_stats"
	tokenDetailedStats    = "detailed_stats"
	tokenUsersStats       = "users_stats"
	tokenPopularMaterials = "popular_materials"
	tokenAddMaterial      = "add_material"
	tokenManageMaterials  = "manage_materials"
	tokenWizardBack       = "admin_back"
	tokenCancel           = "cancel"
)

// Parameterized verbs. Telegram limits callback data to 64 bytes and
// subject keys plus type labels are multi-byte Cyrillic, so types travel
// as taxonomy indexes and verbs stay short.
const (
	verbSubject       = "s"
	verbGroup         = "g"
	verbMaterialType  = "t"
	verbMaterial      = "m"
	verbMaterialBack  = "mb"
	verbDeleteAsk     = "dc"
	verbDelete        = "dm"
	verbWizardSubject = "as"
	verbWizardGroup   = "ag"
	verbWizardType    = "at"
)

var bareKinds = map[string]Kind{
	tokenMainMenu:         KindMainMenu,
	tokenHelp:             KindHelp,
	tokenAllSubjects:      KindAllSubjects,
	tokenRecent:           KindRecent,
	tokenAdminPanel:       KindAdminPanel,
	tokenAdminStats:       KindAdminStats,
	tokenDetailedStats:    KindDetailedStats,
	tokenUsersStats:       KindUsersStats,
	tokenPopularMaterials: KindPopularMaterials,
	tokenAddMaterial:      KindAddMaterial,
	tokenManageMaterials:  KindManageMaterials,
	tokenWizardBack:       KindWizardBack,
	tokenCancel:           KindCancel,
}

// ParseAction decodes a callback token. Unknown or malformed tokens come
// back as KindUnknown, never as an error: a stale button from an old
// message must not crash a handler.
func ParseAction(data string) Action {
	if kind, ok := bareKinds[data]; ok {
		return Action{Kind: kind}
	}

	parts := strings.SplitN(data, ":", 3)
	switch parts[0] {
	case verbSubject:
		if len(parts) == 2 {
			return Action{Kind: KindSubject, SubjectKey: parts[1]}
		}
	case verbGroup:
		if len(parts) == 3 {
			return Action{Kind: KindGroup, SubjectKey: parts[1], Group: parts[2]}
		}
	case verbMaterialType:
		if len(parts) == 3 {
			if idx, err := strconv.Atoi(parts[2]); err == nil {
				return Action{Kind: KindMaterialType, SubjectKey: parts[1], TypeIndex: idx}
			}
		}
	case verbMaterial:
		if len(parts) == 2 {
			return Action{Kind: KindMaterial, MaterialID: parts[1]}
		}
	case verbMaterialBack:
		if len(parts) == 2 {
			return Action{Kind: KindMaterialBack, MaterialID: parts[1]}
		}
	case verbDeleteAsk:
		if len(parts) == 2 {
			return Action{Kind: KindDeleteAsk, MaterialID: parts[1]}
		}
	case verbDelete:
		if len(parts) == 2 {
			return Action{Kind: KindDelete, MaterialID: parts[1]}
		}
	case verbWizardSubject:
		if len(parts) == 2 {
			return Action{Kind: KindWizardSubject, SubjectKey: parts[1]}
		}
	case verbWizardGroup:
		if len(parts) == 2 {
			return Action{Kind: KindWizardGroup, Group: parts[1]}
		}
	case verbWizardType:
		if len(parts) == 2 {
			if idx, err := strconv.Atoi(parts[1]); err == nil {
				return Action{Kind: KindWizardType, TypeIndex: idx}
			}
		}
	}
	return Action{Kind: KindUnknown}
}

// Token builders. Keyboards use these so a token format change stays in
// one file.

func TokenMainMenu() string         { return tokenMainMenu }
func TokenHelp() string             { return tokenHelp }
func TokenAllSubjects() string      { return tokenAllSubjects }
func TokenRecent() string           { return tokenRecent }
func TokenAdminPanel() string       { return tokenAdminPanel }
func TokenAdminStats() string       { return tokenAdminStats }
func TokenDetailedStats() string    { return tokenDetailedStats }
func TokenUsersStats() string       { return tokenUsersStats }
func TokenPopularMaterials() string { return tokenPopularMaterials }
func TokenAddMaterial() string      { return tokenAddMaterial }
func TokenManageMaterials() string  { return tokenManageMaterials }
func TokenWizardBack() string       { return tokenWizardBack }
func TokenCancel() string           { return tokenCancel }

func TokenSubject(key string) string {
	return fmt.Sprintf("%s:%s", verbSubject, key)
}

func TokenGroup(key, group string) string {
	return fmt.Sprintf("%s:%s:%s", verbGroup, key, group)
}

func TokenMaterialType(key string, typeIndex int) string {
	return fmt.Sprintf("%s:%s:%d", verbMaterialType, key, typeIndex)
}

func TokenMaterial(id string) string {
	return fmt.Sprintf("%s:%s", verbMaterial, id)
}

func TokenMaterialBack(id string) string {
	return fmt.Sprintf("%s:%s", verbMaterialBack, id)
}

func TokenDeleteAsk(id string) string {
	return fmt.Sprintf("%s:%s", verbDeleteAsk, id)
}

func TokenDelete(id string) string {
	return fmt.Sprintf("%s:%s", verbDelete, id)
}

func TokenWizardSubject(key string) string {
	return fmt.Sprintf("%s:%s", verbWizardSubject, key)
}

func TokenWizardGroup(group string) string {
	return fmt.Sprintf("%s:%s", verbWizardGroup, group)
}

func TokenWizardType(typeIndex int) string {
	return fmt.Sprintf("%s:%d", verbWizardType, typeIndex)
}
