package persistence

import (
	"fmt"

	"github.com/unionadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// EntityColumns maps the external field names accepted in query strings to
// database columns and preloadable relations for one entity. Unknown field,
// sort or populate names are silently dropped so user input can never reach
// SQL unvalidated.
type EntityColumns struct {
	// Columns maps query field name -> column name
	Columns map[string]string
	// Relations maps populate name -> GORM association name
	Relations map[string]string
	// DefaultSort is applied when the query carries no sort, e.g. "created_at DESC"
	DefaultSort string
}

// baseColumns are accepted for every entity
var baseColumns = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// Column resolves an external field name, falling back to the shared base
// columns. The second return is false for unknown names.
func (ec EntityColumns) Column(field string) (string, bool) {
	if col, ok := ec.Columns[field]; ok {
		return col, true
	}
	col, ok := baseColumns[field]
	return col, ok
}

// ApplyFilter adds WHERE clauses for every condition whose field resolves to
// a known column. Soft-deleted rows are always excluded.
func ApplyFilter(db *gorm.DB, ec EntityColumns, conditions []shared.Condition) *gorm.DB {
	db = db.Where("is_deleted = ?", false)
	for _, cond := range conditions {
		col, ok := ec.Column(cond.Field)
		if !ok {
			continue
		}
		switch cond.Op {
		case shared.OpEq:
			db = db.Where(col+" = ?", cond.Value)
		case shared.OpNe:
			db = db.Where(col+" <> ?", cond.Value)
		case shared.OpGt:
			db = db.Where(col+" > ?", cond.Value)
		case shared.OpGte:
			db = db.Where(col+" >= ?", cond.Value)
		case shared.OpLt:
			db = db.Where(col+" < ?", cond.Value)
		case shared.OpLte:
			db = db.Where(col+" <= ?", cond.Value)
		case shared.OpIn:
			db = db.Where(col+" IN ?", cond.Values)
		case shared.OpLike:
			db = db.Where(col+" LIKE ?", "%"+cond.Value+"%")
		}
	}
	return db
}

// ApplySort adds ORDER BY clauses for every sort field that resolves to a
// known column, falling back to the entity's default sort.
func ApplySort(db *gorm.DB, ec EntityColumns, sort []shared.SortField) *gorm.DB {
	applied := false
	for _, s := range sort {
		col, ok := ec.Column(s.Field)
		if !ok {
			continue
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", col, dir))
		applied = true
	}
	if !applied && ec.DefaultSort != "" {
		db = db.Order(ec.DefaultSort)
	}
	return db
}

// ApplyProjection narrows the SELECT list to the requested fields. The id
// column is always included so results stay addressable.
func ApplyProjection(db *gorm.DB, ec EntityColumns, fields []string) *gorm.DB {
	if len(fields) == 0 {
		return db
	}
	cols := []string{"id"}
	for _, f := range fields {
		col, ok := ec.Column(f)
		if !ok || col == "id" {
			continue
		}
		cols = append(cols, col)
	}
	return db.Select(cols)
}

// ApplyPopulate adds Preloads for every requested relation the entity allows
func ApplyPopulate(db *gorm.DB, ec EntityColumns, populate []string) *gorm.DB {
	for _, p := range populate {
		if assoc, ok := ec.Relations[p]; ok {
			db = db.Preload(assoc)
		}
	}
	return db
}

// ApplyListQuery runs the filter, counts matching rows, then applies sort,
// projection, populate and pagination. The returned DB is ready for Find;
// the count reflects the filter only.
func ApplyListQuery(db *gorm.DB, ec EntityColumns, q shared.ListQuery, model interface{}) (*gorm.DB, int64, error) {
	var total int64
	if err := ApplyFilter(db.Model(model), ec, q.Conditions).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Chains are not reusable after a finisher, so the filter is built again
	result := ApplySort(ApplyFilter(db.Model(model), ec, q.Conditions), ec, q.Sort)
	result = ApplyProjection(result, ec, q.Fields)
	result = ApplyPopulate(result, ec, q.Populate)
	result = result.Offset(q.Offset()).Limit(q.Limit())
	return result, total, nil
}
