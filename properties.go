package tmxparser

import "encoding/xml"

func propertiesEmpty(props *Properties, e xml.StartElement) error {
	if e.Name.Local != "property" {
		warnEmptyTag(docProperties.String(), e.Name.Local)
		return nil
	}
	return props.add(e.Attr)
}

// propertiesStart handles an open <property>. Its attributes are stored as
// for the self closing form. The body (a multi line string or the members
// of a class value) is discarded.
func propertiesStart(c *cursor, props *Properties, e xml.StartElement) error {
	if e.Name.Local != "property" {
		return skipTag(c, docProperties, e)
	}
	if err := props.add(e.Attr); err != nil {
		return err
	}
	return c.skip()
}

// add stores one <property>. Attributes are read in document order: the
// type must come before the value, and anything after the value is
// ignored.
func (props *Properties) add(attrs []xml.Attr) error {
	var name, typ string
	typed := false
	for _, a := range attrs {
		switch a.Name.Local {
		case "name":
			s, err := getString(a)
			if err != nil {
				return err
			}
			name = s
		case "type":
			s, err := getString(a)
			if err != nil {
				return err
			}
			typed = true
			switch s {
			case "bool", "int":
				typ = s
			default:
				Logger().Warn("unrecognized property type", "name", name, "type", s)
				typ = ""
			}
		case "value":
			if !typed {
				return unsupportedf("property %q has a value before its type", name)
			}
			return props.set(name, typ, a)
		default:
			warnAttr("property", a.Name.Local)
		}
	}
	return nil
}

func (props *Properties) set(name, typ string, a xml.Attr) error {
	switch typ {
	case "bool":
		s, err := getString(a)
		if err != nil {
			return err
		}
		switch s {
		case "true":
			props.Booleans[name] = true
		case "false":
			props.Booleans[name] = false
		default:
			return parseErrorf("bool property %q has value %q", name, s)
		}
	case "int":
		n, err := getValue[int64](a)
		if err != nil {
			return err
		}
		props.Integers[name] = n
	}
	return nil
}
