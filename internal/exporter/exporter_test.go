package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"dmg-assess/internal/models"
	"dmg-assess/internal/utils"

	"github.com/xuri/excelize/v2"
)

func readCSV(data []byte) ([][]string, error) {
	return csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utils.UTF8BOM))).ReadAll()
}

func sampleScenes() []models.DamageScene {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	offensive := "红方 <A&B>"
	return []models.DamageScene{
		{
			DSID: 2, DSCode: "DS_2", DSName: "含,逗号\"引号\"",
			DSOffensive: &offensive,
			AMID:        7, TargetType: models.TargetShelter, TargetID: 3,
			DSStatus: 1, CreatedTime: &created, UpdatedTime: &created,
		},
		{
			DSID: 1, DSCode: "DS_1", DSName: "场景一",
			AMID: 8, TargetType: models.TargetRunway, TargetID: 4,
			DSStatus: 1,
		},
	}
}

func TestCSVEmpty(t *testing.T) {
	out, err := (&CSVCodec{}).Export([]models.DamageScene{})
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("空列表应输出 0 字节，实际 %d", len(out))
	}
}

func TestCSVExport(t *testing.T) {
	scenes := sampleScenes()
	codec := &CSVCodec{}

	out, err := codec.Export(scenes)
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}
	if !bytes.HasPrefix(out, utils.UTF8BOM) {
		t.Fatal("CSV 应以 BOM 开头")
	}

	again, _ := codec.Export(scenes)
	if !bytes.Equal(out, again) {
		t.Error("两次导出结果应完全一致")
	}

	records, err := readCSV(out)
	if err != nil {
		t.Fatalf("重新解析失败: %v", err)
	}
	wantHeader := []string{
		"DSID", "DSCode", "DSName", "DSOffensive", "DSDefensive", "DSBattle",
		"AMID", "AMCode", "TargetType", "TargetID", "TargetCode", "DSStatus",
		"CreatedTime", "UpdatedTime",
	}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("表头 = %v", records[0])
	}
	if len(records) != 3 {
		t.Fatalf("期望 3 行（含表头），实际 %d", len(records))
	}

	first := records[1]
	if first[2] != scenes[0].DSName || first[3] != "红方 <A&B>" {
		t.Errorf("特殊字符未正确往返: %v", first)
	}
	if first[8] != "2" || first[12] != "2024-01-02 03:04:05" {
		t.Errorf("目标类型或时间格式不符: %v", first)
	}
	second := records[2]
	if second[3] != "" || second[12] != "" {
		t.Errorf("空字段应输出空单元格: %v", second)
	}
	if strings.Contains(string(out), "null") || strings.Contains(string(out), "<nil>") {
		t.Error("CSV 不应出现 null 文本")
	}
}

func TestCSVExplicitColumns(t *testing.T) {
	out, err := (&CSVCodec{Columns: []string{"DSName", "DSID"}}).Export(sampleScenes())
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}
	records, _ := readCSV(out)
	if !reflect.DeepEqual(records[0], []string{"DSName", "DSID"}) || records[2][1] != "1" {
		t.Errorf("按指定列导出不符: %v", records)
	}

	if _, err := (&CSVCodec{Columns: []string{"Nope"}}).Export(sampleScenes()); err == nil {
		t.Error("未知列名应报错")
	}
}

func TestJSONEmpty(t *testing.T) {
	out, err := (&JSONCodec{}).Export([]models.AssessmentReport{})
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}
	if string(out) != "[]" {
		t.Errorf("空列表应输出 [], 实际 %q", out)
	}
}

func TestJSONExport(t *testing.T) {
	scenes := sampleScenes()
	codec := &JSONCodec{}

	out, err := codec.Export(scenes)
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}
	again, _ := codec.Export(scenes)
	if !bytes.Equal(out, again) {
		t.Error("两次导出结果应完全一致")
	}

	s := string(out)
	if !strings.HasPrefix(s, "[\n  {\n    \"DSID\": 2,\n    \"DSCode\": \"DS_2\",") {
		t.Errorf("字段顺序或缩进不符:\n%s", s)
	}
	if !strings.Contains(s, `"DSOffensive": "红方 <A&B>"`) {
		t.Error("不应转义 HTML 字符")
	}
	if !strings.Contains(s, `"CreatedTime": "2024-01-02 03:04:05"`) {
		t.Error("时间应输出为字符串")
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("重新解析失败: %v", err)
	}
	if len(decoded) != 2 || len(decoded[1]) != 14 {
		t.Fatalf("每个对象都应包含全部字段: %+v", decoded)
	}
	if decoded[1]["DSOffensive"] != nil || decoded[1]["CreatedTime"] != nil {
		t.Errorf("空字段应为 null: %+v", decoded[1])
	}
	if decoded[0]["DSName"] != scenes[0].DSName || decoded[1]["AMID"] != float64(8) {
		t.Errorf("字段值不一致: %+v", decoded)
	}
}

func TestJSONExportPointerSlice(t *testing.T) {
	degree := models.DegreeSevere
	depth := 1.25
	results := []*models.AssessmentResult{{DAID: 1, DSID: 1, DPID: 1, AMID: 1, TargetType: 1, TargetID: 1, DADepth: &depth, DamageDegree: &degree}}

	out, err := (&JSONCodec{}).Export(results)
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}
	if !strings.Contains(string(out), `"DADepth": 1.25`) || !strings.Contains(string(out), `"DamageDegree": "重度毁伤"`) {
		t.Errorf("输出不符:\n%s", out)
	}

	if _, err := (&JSONCodec{}).Export([]*models.AssessmentResult{nil}); err == nil {
		t.Error("空指针元素应报错")
	}
	if _, err := (&JSONCodec{}).Export(42); err == nil {
		t.Error("非切片输入应报错")
	}
}

func TestXLSXExport(t *testing.T) {
	out, err := (&XLSXCodec{Sheet: "DamageScene"}).Export(sampleScenes())
	if err != nil {
		t.Fatalf("Export 失败: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("打开导出的工作簿失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("DamageScene")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "DSID" || rows[1][1] != "DS_2" {
		t.Errorf("工作表内容不符: %v", rows)
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	if got := FileName("DamageScene", at, "csv"); got != "DamageScene_20240506_070809.csv" {
		t.Errorf("FileName = %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" XLSX "); err != nil || f != FormatXLSX {
		t.Errorf("ParseFormat(XLSX) = %v, %v", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("pdf 应不被支持")
	}
}
