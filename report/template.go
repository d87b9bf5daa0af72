package report

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sequence analysis report</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 1200px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
        .container { background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; }
        h2 { color: #34495e; margin-top: 30px; }
        .stats { background: #ecf0f1; padding: 15px; border-radius: 5px; margin: 20px 0; }
        .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; margin-top: 10px; }
        .stat-item { background: white; padding: 10px; border-radius: 4px; border-left: 4px solid #3498db; }
        .stat-label { font-weight: bold; color: #7f8c8d; font-size: 0.9em; }
        .stat-value { font-size: 1.5em; color: #2c3e50; margin-top: 5px; }
        .sequence-box { background: #2c3e50; color: #2ecc71; padding: 15px; border-radius: 5px; font-family: monospace; white-space: pre-wrap; word-break: break-all; max-height: 200px; overflow-y: auto; }
        .info { background: #e8f4f8; border-left: 4px solid #3498db; padding: 10px 15px; margin: 15px 0; }
        table { border-collapse: collapse; width: 100%; margin: 15px 0; }
        th, td { border: 1px solid #bdc3c7; padding: 8px; text-align: left; font-family: monospace; }
        th { background: #ecf0f1; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Sequence analysis report</h1>
        <div class="info">
            <strong>Sequence:</strong> {{.Summary.Record.Header}} ({{.Summary.Type}})
        </div>
        <h2>Statistics</h2>
{{- with .Nucleotide}}
        <div class="stats">
            <div class="stats-grid">
                <div class="stat-item"><div class="stat-label">Length</div><div class="stat-value">{{.Length}} bp</div></div>
                <div class="stat-item"><div class="stat-label">GC%</div><div class="stat-value">{{printf "%.2f" .GCContent}}%</div></div>
                <div class="stat-item"><div class="stat-label">AT%</div><div class="stat-value">{{printf "%.2f" .ATContent}}%</div></div>
                <div class="stat-item"><div class="stat-label">Purines</div><div class="stat-value">{{.PurineCount}}</div></div>
                <div class="stat-item"><div class="stat-label">Pyrimidines</div><div class="stat-value">{{.PyrimidineCount}}</div></div>
                <div class="stat-item"><div class="stat-label">Purine/pyrimidine</div><div class="stat-value">{{printf "%.2f" .PurinePyrimidineRatio}}</div></div>
                <div class="stat-item"><div class="stat-label">Shannon entropy</div><div class="stat-value">{{printf "%.3f" .ShannonEntropy}} bits</div></div>
{{- range $base, $count := .Counts}}
                <div class="stat-item"><div class="stat-label">{{$base}}</div><div class="stat-value">{{$count}}</div></div>
{{- end}}
            </div>
        </div>
{{- end}}
{{- with .Protein}}
        <div class="stats">
            <div class="stats-grid">
                <div class="stat-item"><div class="stat-label">Length</div><div class="stat-value">{{.Length}} aa</div></div>
                <div class="stat-item"><div class="stat-label">Molecular weight</div><div class="stat-value">{{printf "%.2f" .MolecularWeight}} Da</div></div>
                <div class="stat-item"><div class="stat-label">Isoelectric point</div><div class="stat-value">{{printf "%.2f" .IsoelectricPoint}}</div></div>
                <div class="stat-item"><div class="stat-label">GRAVY</div><div class="stat-value">{{printf "%.3f" .GravyIndex}}</div></div>
                <div class="stat-item"><div class="stat-label">Polar</div><div class="stat-value">{{printf "%.2f" .Composition.Polar}}%</div></div>
                <div class="stat-item"><div class="stat-label">Nonpolar</div><div class="stat-value">{{printf "%.2f" .Composition.Nonpolar}}%</div></div>
                <div class="stat-item"><div class="stat-label">Acidic</div><div class="stat-value">{{printf "%.2f" .Composition.Acidic}}%</div></div>
                <div class="stat-item"><div class="stat-label">Basic</div><div class="stat-value">{{printf "%.2f" .Composition.Basic}}%</div></div>
                <div class="stat-item"><div class="stat-label">Aromatic</div><div class="stat-value">{{printf "%.2f" .Composition.Aromatic}}%</div></div>
                <div class="stat-item"><div class="stat-label">Aliphatic</div><div class="stat-value">{{printf "%.2f" .Composition.Aliphatic}}%</div></div>
            </div>
        </div>
{{- end}}
{{- if .Summary.DNA}}
        <h2>DNA sequence</h2>
        <div class="sequence-box">{{wrap .Summary.DNA}}</div>
{{- end}}
{{- if .Summary.RNA}}
        <h2>RNA sequence (transcribed)</h2>
        <div class="sequence-box">{{wrap .Summary.RNA}}</div>
{{- end}}
{{- if .Summary.Protein}}
        <h2>Protein sequence (translated)</h2>
        <div class="sequence-box">{{wrap .Summary.Protein}}</div>
{{- end}}
{{- if .Summary.ORFs}}
        <h2>Open reading frames</h2>
        <table>
            <tr><th>Frame</th><th>Start</th><th>End</th><th>Length (aa)</th><th>Protein</th></tr>
{{- range .Summary.ORFs}}
            <tr><td>{{.Frame}}</td><td>{{.Start}}</td><td>{{.End}}</td><td>{{.Length}}</td><td>{{.Protein}}</td></tr>
{{- end}}
        </table>
{{- end}}
{{- with .Summary.SixFrames}}
        <h2>Six-frame translation</h2>
        <table>
            <tr><th>Frame</th><th>Protein</th></tr>
{{- range $i, $p := .Forward}}
            <tr><td>+{{$i}}</td><td>{{$p}}</td></tr>
{{- end}}
{{- range $i, $p := .Reverse}}
            <tr><td>-{{$i}}</td><td>{{$p}}</td></tr>
{{- end}}
        </table>
{{- end}}
{{- if .CodonUsage}}
        <h2>Codon usage</h2>
        <table>
            <tr><th>Codon</th><th>Count</th></tr>
{{- range .CodonUsage}}
            <tr><td>{{.Codon}}</td><td>{{.Count}}</td></tr>
{{- end}}
        </table>
{{- end}}
        <div class="info">
            <strong>Note:</strong> translation uses the standard genetic code.
            Report {{.ReportID}}, generated {{.Generated}}.
        </div>
    </div>
</body>
</html>
`
