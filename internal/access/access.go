// Package access реализует проверку прав доступа к сущностям платформы.
//
// Правила выражены как композируемые функции-предикаты, объединяемые
// через AllOf/AnyOf, а не через наследование. Набор правил для действия
// выбирается чистой функцией по виду действия и вычисляется явно
// для каждого запроса.
package access

// Action вид действия над сущностью.
type Action string

// Виды действий.
const (
	ActionCreate   Action = "create"
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// Principal аутентифицированный пользователь, выполняющий запрос.
// Nil означает анонимный запрос.
type Principal struct {
	UserID      int64  // Идентификатор пользователя
	Username    string // Имя пользователя
	IsModerator bool   // Принадлежность к группе модераторов
}

// Rule предикат доступа: принимает принципала, вид действия и владельца
// целевой сущности (nil, если сущности нет или владелец не задан).
type Rule func(p *Principal, action Action, ownerID *int64) bool

// Authenticated разрешает действие любому аутентифицированному пользователю.
func Authenticated(p *Principal, _ Action, _ *int64) bool {
	return p != nil
}

// Owner разрешает действие владельцу целевой сущности.
func Owner(p *Principal, _ Action, ownerID *int64) bool {
	return p != nil && ownerID != nil && *ownerID == p.UserID
}

// Moderator разрешает модератору все действия кроме create и destroy.
func Moderator(p *Principal, action Action, _ *int64) bool {
	if p == nil || !p.IsModerator {
		return false
	}
	return action != ActionCreate && action != ActionDestroy
}

// NotModerator запрещает действие участникам группы модераторов.
func NotModerator(p *Principal, _ Action, _ *int64) bool {
	return p != nil && !p.IsModerator
}

// ProfileOwner разрешает чтение любому аутентифицированному пользователю,
// изменение — только владельцу профиля. Владельцем здесь считается сам
// целевой пользователь.
func ProfileOwner(p *Principal, action Action, ownerID *int64) bool {
	if p == nil {
		return false
	}
	if action == ActionList || action == ActionRetrieve {
		return true
	}
	return ownerID != nil && *ownerID == p.UserID
}

// DenyAll полностью запрещает доступ.
func DenyAll(_ *Principal, _ Action, _ *int64) bool {
	return false
}

// AnyOf объединяет правила через логическое ИЛИ.
func AnyOf(rules ...Rule) Rule {
	return func(p *Principal, action Action, ownerID *int64) bool {
		for _, rule := range rules {
			if rule(p, action, ownerID) {
				return true
			}
		}
		return false
	}
}

// AllOf объединяет правила через логическое И.
func AllOf(rules ...Rule) Rule {
	return func(p *Principal, action Action, ownerID *int64) bool {
		for _, rule := range rules {
			if !rule(p, action, ownerID) {
				return false
			}
		}
		return true
	}
}

// MaterialsRules возвращает упорядоченный набор правил для действий
// над курсами и уроками:
//   - create и destroy доступны только владельцу, модераторам запрещены;
//   - update доступен владельцу или модератору;
//   - list и retrieve доступны любому аутентифицированному пользователю.
func MaterialsRules(action Action) []Rule {
	switch action {
	case ActionCreate:
		return []Rule{Authenticated, NotModerator}
	case ActionDestroy:
		return []Rule{Authenticated, NotModerator, Owner}
	case ActionUpdate:
		return []Rule{Authenticated, AnyOf(Owner, Moderator)}
	default:
		return []Rule{Authenticated}
	}
}

// ProfileRules возвращает набор правил для действий над профилями
// пользователей: чтение доступно всем аутентифицированным, изменение
// и удаление — только владельцу профиля.
func ProfileRules(_ Action) []Rule {
	return []Rule{Authenticated, ProfileOwner}
}

// Check вычисляет набор правил как их конъюнкцию: запрет любого
// правила запрещает действие.
func Check(rules []Rule, p *Principal, action Action, ownerID *int64) bool {
	return AllOf(rules...)(p, action, ownerID)
}
