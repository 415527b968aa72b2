package report

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
)

// xmlRenderer writes
//
//	<dryrun run=".." total="N" writes="M" captured="C">
//	  <policy skip-overwrite="false" minimal-update="false"/>
//	  <file path=".." state=".." code=".."/>
//	</dryrun>
type xmlRenderer struct {
	opts Options
}

func (x *xmlRenderer) Render(w io.Writer, r *Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("dryrun")
	if r.RunID != "" {
		root.CreateAttr("run", r.RunID)
	}
	root.CreateAttr("total", strconv.Itoa(r.Total))
	root.CreateAttr("writes", strconv.Itoa(r.Writes()))
	if r.Captured > 0 {
		root.CreateAttr("captured", strconv.Itoa(r.Captured))
	}

	policy := root.CreateElement("policy")
	policy.CreateAttr("skip-overwrite", strconv.FormatBool(r.Policy.SkipOverwrite))
	policy.CreateAttr("minimal-update", strconv.FormatBool(r.Policy.MinimalUpdate))

	for _, e := range r.Entries {
		file := root.CreateElement("file")
		file.CreateAttr("path", e.Path)
		file.CreateAttr("state", e.Kind.String())
		file.CreateAttr("code", e.Kind.Code())
		if e.Context != "" {
			file.CreateAttr("context", e.Context)
		}
		if x.opts.ShowData && len(e.Data) > 0 {
			data, err := dataYAML(e.Data, "")
			if err != nil {
				return err
			}
			file.CreateElement("data").CreateCData(data)
		}
		if e.Diff != "" {
			file.CreateElement("diff").CreateCData(e.Diff)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
