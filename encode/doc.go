// Package encode writes parsed Praat objects.
//
// WriteTextGrid writes a TextGrid back in Praat's long text format. Dump
// renders any parsed object, or a query result, as YAML or JSON:
//
//	encode.Dump(os.Stdout, formant, encode.EncodeFormat(format.JSONFormat))
//
// Colors may be added to dumps with EncodeColors(NewColors()).
package encode
