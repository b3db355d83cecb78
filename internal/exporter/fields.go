package exporter

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

type column struct {
	name  string
	index int
}

// table 反射得到的列和行
type table struct {
	columns []column
	rows    []reflect.Value
}

// newTable 解析 items；order 非空时按给定列名顺序输出
func newTable(items interface{}, order []string) (*table, error) {
	if items == nil {
		return &table{}, nil
	}

	v := reflect.ValueOf(items)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("导出数据必须是切片，实际为 %s", v.Kind())
	}

	elem := v.Type().Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("导出数据元素必须是结构体，实际为 %s", elem.Kind())
	}

	columns, err := columnsOf(elem, order)
	if err != nil {
		return nil, err
	}

	rows := make([]reflect.Value, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		row := v.Index(i)
		if row.Kind() == reflect.Ptr {
			if row.IsNil() {
				return nil, fmt.Errorf("第 %d 条数据为空", i+1)
			}
			row = row.Elem()
		}
		rows = append(rows, row)
	}
	return &table{columns: columns, rows: rows}, nil
}

func columnsOf(t reflect.Type, order []string) ([]column, error) {
	byName := make(map[string]int, t.NumField())
	all := make([]column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		byName[f.Name] = i
		all = append(all, column{name: f.Name, index: i})
	}
	if len(order) == 0 {
		return all, nil
	}

	picked := make([]column, 0, len(order))
	for _, name := range order {
		idx, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%s 没有字段 %s", t.Name(), name)
		}
		picked = append(picked, column{name: name, index: idx})
	}
	return picked, nil
}

func (t *table) header() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// deref 解开指针，nil 返回 ok=false
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, true
}

// text 单元格文本，nil 为空串
func text(v reflect.Value) string {
	v, ok := deref(v)
	if !ok {
		return ""
	}
	if v.Type() == timeType {
		return v.Interface().(time.Time).Format(TimeLayout)
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	}
	return fmt.Sprint(v.Interface())
}

// plain 把命名类型还原为基础类型，nil 返回 nil
func plain(v reflect.Value) interface{} {
	v, ok := deref(v)
	if !ok {
		return nil
	}
	if v.Type() == timeType {
		return v.Interface().(time.Time).Format(TimeLayout)
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		return v.Bool()
	}
	return fmt.Sprint(v.Interface())
}
