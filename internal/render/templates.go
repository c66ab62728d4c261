package render

// One template per (event kind, format) pair. The markdown and plain
// variants carry the same content; plain flattens headers and renders
// line-prefixed bullets. HTML variants are styled documents for the
// mail channel and the chat test path.

const reportMarkdown = `# 📊 Daily Security Report {{.Emoji}}

## 📈 Scan Overview
- **Files scanned**: {{.ScannedFiles}}
- **Threats detected**: {{.TotalThreats}}
- **Threats handled**: {{.HandledThreats}}
- **Scan time**: {{.ScanTime}}s
- **Success rate**: {{.SuccessRate}}%
- **Threat level**: {{.ThreatLevel}} {{.Emoji}}
{{if .System}}
## 🖥️ System Status
- **CPU usage**: {{.System.CPU}}%
- **Memory usage**: {{.System.Memory}}%
- **Disk usage**: {{.System.Disk}}%
- **Uptime**: {{.System.Uptime}}
{{end}}
## 🧠 AI Insights
{{range .Insights}}• {{.}}
{{end}}
## 💡 Recommendations
{{range .Recommendations}}• {{.}}
{{end}}
## 🔗 Quick Links
[View full report]({{.DashboardURL}}) | [Settings]({{.DashboardURL}}#settings)
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const reportPlain = `📊 Daily Security Report {{.Emoji}}

📈 Scan Overview:
• Files scanned: {{.ScannedFiles}}
• Threats detected: {{.TotalThreats}}
• Threats handled: {{.HandledThreats}}
• Scan time: {{.ScanTime}}s
• Success rate: {{.SuccessRate}}%
• Threat level: {{.ThreatLevel}} {{.Emoji}}
{{if .System}}
🖥️ System Status:
• CPU usage: {{.System.CPU}}%
• Memory usage: {{.System.Memory}}%
• Disk usage: {{.System.Disk}}%
• Uptime: {{.System.Uptime}}
{{end}}
🧠 AI Insights:
{{range .Insights}}• {{.}}
{{end}}
💡 Recommendations:
{{range .Recommendations}}• {{.}}
{{end}}
🔗 Full report: {{.DashboardURL}}
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const threatMarkdown = `# 🚨 Threat Alert {{.Emoji}}

## 🔍 Threat Details
- **Type**: {{.Threat.ThreatType}}
- **File**: ` + "`{{.Threat.FilePath}}`" + `
- **Severity**: {{.Threat.Severity}} {{.Emoji}}
- **Confidence**: {{.Confidence}}%
- **Status**: {{.Threat.Status}}
{{if .Threat.Description}}- **Description**: {{.Threat.Description}}
{{end}}
## ⚡ Recommended Measures
• Quarantine the suspicious file immediately
• Run a deep system scan
• Inspect related system files
• Update virus definitions to the latest version

## 🔗 Quick Response
[View incident]({{.DashboardURL}}#incident) | [Start response]({{.DashboardURL}}#response)
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const threatPlain = `🚨 Threat Alert {{.Emoji}}

🔍 Threat Details:
• Type: {{.Threat.ThreatType}}
• File: {{.Threat.FilePath}}
• Severity: {{.Threat.Severity}} {{.Emoji}}
• Confidence: {{.Confidence}}%
• Status: {{.Threat.Status}}
{{if .Threat.Description}}• Description: {{.Threat.Description}}
{{end}}
⚡ Recommended Measures:
• Quarantine the suspicious file immediately
• Run a deep system scan
• Inspect related system files
• Update virus definitions to the latest version

🔗 View incident: {{.DashboardURL}}#incident
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const emergencyMarkdown = `# 🚨🚨 Emergency Security Alert 🚨🚨

## ⚠️ Threat Summary
- **Severe threats**: {{.UrgentCount}}
- **Total threats**: {{.TotalCount}}
- **Affected systems**: 1
- **Response status**: 🔄 automated response started

## 🔥 Threat List
{{range .Threats}}• **{{.ThreatType}}**: {{.FilePath}} (confidence: {{.Confidence}}%)
{{end}}
## ⚡ Actions Taken
• ✅ Suspicious files quarantined
• ✅ Malicious connections blocked
• ✅ Deep system scan started

## 🎯 Immediate Actions
• **Check every affected system now**
• **Verify the automated response took effect**
• **Notify the on-call security team**
• **Prepare a detailed incident report**

## 🔗 Emergency Response
[Open emergency center]({{.DashboardURL}}#emergency)
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const emergencyPlain = `🚨🚨 Emergency Security Alert 🚨🚨

⚠️ Threat Summary:
• Severe threats: {{.UrgentCount}}
• Total threats: {{.TotalCount}}
• Affected systems: 1
• Response status: 🔄 automated response started

🔥 Threat List:
{{range .Threats}}• {{.ThreatType}}: {{.FilePath}} (confidence: {{.Confidence}}%)
{{end}}
⚡ Actions Taken:
• ✅ Suspicious files quarantined
• ✅ Malicious connections blocked
• ✅ Deep system scan started

🎯 Immediate Actions:
• Check every affected system now
• Verify the automated response took effect
• Notify the on-call security team
• Prepare a detailed incident report

🔗 Emergency center: {{.DashboardURL}}#emergency
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const testMarkdown = `# 🧪 Notification Channel Test

## ✅ Connection Status
The channel is configured correctly and message delivery works.

## 📋 Configuration
- **Server**: {{.Origin.Server}}
- **User**: {{.Origin.User}}
- **Device**: {{.Origin.Device}}

## 🤖 HunterMatrix Security
The integration is ready to deliver security reports and alerts.
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const testPlain = `🧪 Notification Channel Test

✅ Connection Status:
The channel is configured correctly and message delivery works.

📋 Configuration:
• Server: {{.Origin.Server}}
• User: {{.Origin.User}}
• Device: {{.Origin.Device}}

🤖 HunterMatrix Security:
The integration is ready to deliver security reports and alerts.
{{if .Timestamp}}
🕐 {{.Timestamp}}
{{end}}`

const testHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Notification Channel Test</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .container { background: white; padding: 30px; border-radius: 8px; }
        .header { text-align: center; border-bottom: 2px solid #007bff; padding-bottom: 20px; }
        .alert-success { background: #d4edda; padding: 15px; border-radius: 5px; border-left: 4px solid #28a745; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🤖 Notification Channel Test</h1>
            <p>HunterMatrix security notification service</p>
        </div>

        <div class="alert-success">
            <strong>✅ Configuration test passed!</strong><br>
            If you received this message, the channel is configured correctly.
        </div>

        <h3>📋 Configuration</h3>
        <ul>
            <li>Server: {{.Origin.Server}}</li>
            <li>User: {{.Origin.User}}</li>
            <li>Device: {{.Origin.Device}}</li>
        </ul>

        <p><strong>🤖 HunterMatrix Security</strong><br>
        The channel is ready to deliver security reports and alerts.</p>
        {{if .Timestamp}}<p style="color: #6c757d; font-size: 12px;">🕐 {{.Timestamp}}</p>{{end}}
    </div>
</body>
</html>
`

const reportHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Daily Security Report</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 640px; margin: 0 auto; padding: 24px;">
        <h2 style="color: #2c3e50;">📊 Daily Security Report {{.Emoji}}</h2>

        {{if .Subtitle}}<p>{{.Subtitle}}</p>{{end}}

        <h3 style="color: #2c3e50; margin-top: 30px;">📈 Scan Overview</h3>
        <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
            <tr style="background-color: #eef1f5;">
                <th style="padding: 10px; text-align: left; border-bottom: 1px solid #ddd;">Metric</th>
                <th style="padding: 10px; text-align: left; border-bottom: 1px solid #ddd;">Value</th>
            </tr>
            <tr><td style="padding: 10px; border-bottom: 1px solid #eee;"><strong>Files scanned</strong></td><td style="padding: 10px; border-bottom: 1px solid #eee;">{{.ScannedFiles}}</td></tr>
            <tr><td style="padding: 10px; border-bottom: 1px solid #eee;"><strong>Threats detected</strong></td><td style="padding: 10px; border-bottom: 1px solid #eee;">{{.TotalThreats}}</td></tr>
            <tr><td style="padding: 10px; border-bottom: 1px solid #eee;"><strong>Threats handled</strong></td><td style="padding: 10px; border-bottom: 1px solid #eee;">{{.HandledThreats}}</td></tr>
            <tr><td style="padding: 10px; border-bottom: 1px solid #eee;"><strong>Scan time</strong></td><td style="padding: 10px; border-bottom: 1px solid #eee;">{{.ScanTime}}s</td></tr>
            <tr><td style="padding: 10px; border-bottom: 1px solid #eee;"><strong>Success rate</strong></td><td style="padding: 10px; border-bottom: 1px solid #eee;">{{.SuccessRate}}%</td></tr>
            <tr><td style="padding: 10px; border-bottom: 1px solid #eee;"><strong>Threat level</strong></td><td style="padding: 10px; border-bottom: 1px solid #eee;">{{.ThreatLevel}} {{.Emoji}}</td></tr>
        </table>

        {{if .System}}
        <h3 style="color: #2c3e50; margin-top: 30px;">🖥️ System Status</h3>
        <ul style="padding-left: 20px;">
            <li>CPU usage: {{.System.CPU}}%</li>
            <li>Memory usage: {{.System.Memory}}%</li>
            <li>Disk usage: {{.System.Disk}}%</li>
            <li>Uptime: {{.System.Uptime}}</li>
        </ul>
        {{end}}

        {{if .Insights}}
        <h3 style="color: #2c3e50; margin-top: 30px;">🧠 AI Insights</h3>
        <ul style="padding-left: 20px;">
            {{range .Insights}}<li style="margin-bottom: 8px;">{{.}}</li>
            {{end}}
        </ul>
        {{end}}

        {{if .Recommendations}}
        <h3 style="color: #2c3e50; margin-top: 30px;">💡 Recommendations</h3>
        <ul style="padding-left: 20px;">
            {{range .Recommendations}}<li style="margin-bottom: 8px;">{{.}}</li>
            {{end}}
        </ul>
        {{end}}

        <p style="text-align: center; margin: 30px 0;">
            <a href="{{.DashboardURL}}" style="background-color: #3498db; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">View Full Report</a>
        </p>
        {{if .Timestamp}}<p style="color: #6c757d; font-size: 12px;">🕐 {{.Timestamp}}</p>{{end}}
    </div>
</body>
</html>
`

const threatHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Threat Alert</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 640px; margin: 0 auto; padding: 24px;">
        <h2 style="color: #c0392b;">🚨 Threat Alert {{.Emoji}}</h2>

        <div style="background-color: #fdecea; padding: 16px; border-radius: 6px; border-left: 4px solid #c0392b; margin: 20px 0;">
            <strong>{{.Threat.ThreatType}}</strong> detected in <code>{{.Threat.FilePath}}</code>
        </div>

        <h3 style="color: #2c3e50;">🔍 Threat Details</h3>
        <ul style="padding-left: 20px;">
            <li>Severity: {{.Threat.Severity}} {{.Emoji}}</li>
            <li>Confidence: {{.Confidence}}%</li>
            <li>Status: {{.Threat.Status}}</li>
            {{if .Threat.Description}}<li>Description: {{.Threat.Description}}</li>{{end}}
        </ul>

        <h3 style="color: #2c3e50;">⚡ Recommended Measures</h3>
        <ul style="padding-left: 20px;">
            <li>Quarantine the suspicious file immediately</li>
            <li>Run a deep system scan</li>
            <li>Inspect related system files</li>
            <li>Update virus definitions to the latest version</li>
        </ul>

        <p style="text-align: center; margin: 30px 0;">
            <a href="{{.DashboardURL}}#incident" style="background-color: #c0392b; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">View Incident</a>
        </p>
        {{if .Timestamp}}<p style="color: #6c757d; font-size: 12px;">🕐 {{.Timestamp}}</p>{{end}}
    </div>
</body>
</html>
`

const emergencyHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Emergency Security Alert</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 640px; margin: 0 auto; padding: 24px;">
        <h2 style="color: #c0392b;">🚨🚨 Emergency Security Alert 🚨🚨</h2>

        <div style="background-color: #fdecea; padding: 16px; border-radius: 6px; border-left: 4px solid #c0392b; margin: 20px 0;">
            <strong>{{.UrgentCount}} severe threats</strong> out of {{.TotalCount}} total require immediate attention.
        </div>

        <h3 style="color: #2c3e50;">🔥 Threat List</h3>
        <ul style="padding-left: 20px;">
            {{range .Threats}}<li style="margin-bottom: 8px;"><strong>{{.ThreatType}}</strong>: {{.FilePath}} (confidence: {{.Confidence}}%)</li>
            {{end}}
        </ul>

        <h3 style="color: #2c3e50;">🎯 Immediate Actions</h3>
        <ul style="padding-left: 20px;">
            <li>Check every affected system now</li>
            <li>Verify the automated response took effect</li>
            <li>Notify the on-call security team</li>
            <li>Prepare a detailed incident report</li>
        </ul>

        <p style="text-align: center; margin: 30px 0;">
            <a href="{{.DashboardURL}}#emergency" style="background-color: #c0392b; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Emergency Center</a>
        </p>
        {{if .Timestamp}}<p style="color: #6c757d; font-size: 12px;">🕐 {{.Timestamp}}</p>{{end}}
    </div>
</body>
</html>
`
