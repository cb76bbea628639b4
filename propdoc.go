// Package propdoc harvests style-property documentation into generated Go data files.
//
// propdoc scans two independently-authored documentation corpora — the Unity
// USS property reference and the Mozilla CSS property reference — and patches
// the extracted value grammars and usage examples into an existing generated
// property-data file, leaving every other byte of that file untouched.
//
// # Pipeline
//
// Run the full harvest against a project root:
//
//	config := propdoc.Config{
//		UnityDoc:   propdoc.DefaultUnityDoc,
//		MozillaDoc: propdoc.DefaultMozillaDoc,
//		TargetFile: propdoc.DefaultTargetFile,
//	}
//	result, err := propdoc.Harvest(config)
//
// The project root is located by walking upward from the working directory
// until a go.mod manifest is found. Both documents are read fully, three
// extraction passes build name-keyed mappings, and a single merge pass
// rewrites the Format, ExamplesUnity and ExamplesMozilla fields of matching
// records in the target file.
//
// # Extractors
//
// The three passes are pure functions over document text and can be used
// directly:
//
//	formats := propdoc.ExtractFormats(unityDoc)
//	unity := propdoc.ExtractUnityExamples(unityDoc)
//	mozilla := propdoc.ExtractMozillaExamples(mozillaDoc)
//
// # CLI Tool
//
// propdoc also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/propdoc/cmd/propdoc@latest
package propdoc
