package templates

var catalog = []Template{
	{
		ID:          "template_001",
		Name:        "Instagram Video Poster",
		Category:    "Social Media",
		Description: "Automatically post videos from Google Drive to Instagram when new files are added",
		Tags:        []string{"instagram", "google drive", "video", "ai captions"},
		AutomationSummary: "Automatically posts new videos from Google Drive to Instagram " +
			"with custom captions and hashtags",
		RequiredTools: []string{
			"Google Drive - Monitor for new video files",
			"Instagram Basic Display API - Post videos to feed",
			"OpenAI GPT-4 - Generate engaging captions",
		},
		WorkflowSteps: []string{
			"1. Monitor Google Drive folder for new video files (.mp4, .mov)",
			"2. Generate engaging caption using AI based on filename/metadata",
			"3. Upload video to Instagram with generated caption",
		},
		SetupInstructions: "Connect your Google Drive and Instagram accounts, then point the trigger at the folder you upload videos to.",
		MakeJSON: `{
  "name": "Instagram Video Poster",
  "flow": [
    {
      "id": 1,
      "module": "google-drive:WatchFiles",
      "version": 1,
      "parameters": {"folderId": "your-folder-id", "fileTypes": ["video/mp4", "video/quicktime"]},
      "mapper": {},
      "metadata": {"designer": {"x": 0, "y": 0}}
    },
    {
      "id": 2,
      "module": "openai:CreateCompletion",
      "version": 1,
      "parameters": {"model": "gpt-4", "max_tokens": 150},
      "mapper": {"prompt": "Create an engaging Instagram caption for a video titled: {{1.name}}. Include relevant hashtags."},
      "metadata": {"designer": {"x": 300, "y": 0}}
    },
    {
      "id": 3,
      "module": "instagram:CreateMedia",
      "version": 1,
      "parameters": {},
      "mapper": {"videoUrl": "{{1.webContentLink}}", "caption": "{{2.choices[0].text}}"},
      "metadata": {"designer": {"x": 600, "y": 0}}
    }
  ],
  "metadata": {"instant": false, "version": 1, "zone": "eu1.make.com"}
}`,
		N8NJSON: `{
  "name": "Instagram Video Poster",
  "nodes": [
    {
      "parameters": {"folderId": "your-folder-id", "fileTypes": "video"},
      "name": "Google Drive Trigger",
      "type": "n8n-nodes-base.googleDriveTrigger",
      "typeVersion": 1,
      "position": [240, 300]
    },
    {
      "parameters": {"model": "gpt-4", "maxTokens": 150, "prompt": "Create an engaging Instagram caption for: {{ $json.name }}. Include hashtags."},
      "name": "Generate Caption",
      "type": "n8n-nodes-base.openAi",
      "typeVersion": 1,
      "position": [460, 300]
    },
    {
      "parameters": {"url": "https://graph.instagram.com/me/media", "method": "POST"},
      "name": "Post To Instagram",
      "type": "n8n-nodes-base.httpRequest",
      "typeVersion": 1,
      "position": [680, 300]
    }
  ],
  "connections": {
    "Google Drive Trigger": {"main": [["Generate Caption"]]},
    "Generate Caption": {"main": [["Post To Instagram"]]}
  },
  "active": false,
  "settings": {"executionOrder": "v1"},
  "versionId": "1"
}`,
	},
	{
		ID:          "template_002",
		Name:        "Lead Capture Flow",
		Category:    "Marketing",
		Description: "Capture leads from website forms and automatically add them to CRM with follow-up sequence",
		Tags:        []string{"leads", "crm", "webhook", "hubspot"},
		AutomationSummary: "Captures website form submissions, adds contacts to CRM and " +
			"sends a welcome email",
		RequiredTools: []string{
			"Webhook - Receive form submissions from website",
			"HubSpot CRM - Store lead information",
			"Email Service - Send welcome emails",
		},
		WorkflowSteps: []string{
			"1. Receive form submission via webhook from website",
			"2. Add new lead to CRM with proper tags and source tracking",
			"3. Send personalized welcome email",
		},
		SetupInstructions: "Create the webhook, wire your form's submit action to it, and connect HubSpot plus your mail provider.",
		MakeJSON: `{
  "name": "Lead Capture Flow",
  "flow": [
    {
      "id": 1,
      "module": "webhook:CustomWebHook",
      "version": 1,
      "parameters": {"hookUrl": "auto-generated-webhook-url"},
      "mapper": {},
      "metadata": {"designer": {"x": 0, "y": 0}}
    },
    {
      "id": 2,
      "module": "hubspot:CreateContact",
      "version": 1,
      "parameters": {},
      "mapper": {"email": "{{1.email}}", "firstname": "{{1.first_name}}", "source": "website-form"},
      "metadata": {"designer": {"x": 300, "y": 0}}
    },
    {
      "id": 3,
      "module": "email:ActionSendEmail",
      "version": 1,
      "parameters": {},
      "mapper": {"to": "{{1.email}}", "subject": "Welcome!", "text": "Thanks for signing up."},
      "metadata": {"designer": {"x": 600, "y": 0}}
    }
  ],
  "metadata": {"instant": true, "version": 1, "zone": "eu1.make.com"}
}`,
		N8NJSON: `{
  "name": "Lead Capture Flow",
  "nodes": [
    {
      "parameters": {"path": "lead-capture", "httpMethod": "POST"},
      "name": "Webhook",
      "type": "n8n-nodes-base.webhook",
      "typeVersion": 1,
      "position": [240, 300]
    },
    {
      "parameters": {"resource": "contact", "email": "={{ $json.email }}"},
      "name": "Create Contact",
      "type": "n8n-nodes-base.hubspot",
      "typeVersion": 1,
      "position": [460, 300]
    },
    {
      "parameters": {"toEmail": "={{ $json.email }}", "subject": "Welcome!", "text": "Thanks for signing up."},
      "name": "Send Welcome Email",
      "type": "n8n-nodes-base.emailSend",
      "typeVersion": 1,
      "position": [680, 300]
    }
  ],
  "connections": {
    "Webhook": {"main": [["Create Contact"]]},
    "Create Contact": {"main": [["Send Welcome Email"]]}
  },
  "active": false,
  "settings": {"executionOrder": "v1"},
  "versionId": "1"
}`,
	},
	{
		ID:          "template_003",
		Name:        "Email Follow-Up Sequence",
		Category:    "Marketing",
		Description: "Automated email nurture sequence for new subscribers with timed sends",
		Tags:        []string{"email", "nurture", "drip", "subscribers"},
		AutomationSummary: "Sends a series of timed, personalized emails to nurture new " +
			"subscribers",
		RequiredTools: []string{
			"Email Service Provider - Send emails",
			"Scheduler - Delay between sequence steps",
		},
		WorkflowSteps: []string{
			"1. New subscriber added to email list via signup form",
			"2. Send immediate welcome email with lead magnet",
			"3. Wait 2 days, then send educational content email",
		},
		SetupInstructions: "Connect your email provider and adjust the wait period to match your sequence cadence.",
		MakeJSON: `{
  "name": "Email Follow-Up Sequence",
  "flow": [
    {
      "id": 1,
      "module": "gmail:TriggerWatchEmails",
      "version": 1,
      "parameters": {"folder": "INBOX", "filter": "list-signup"},
      "mapper": {},
      "metadata": {"designer": {"x": 0, "y": 0}}
    },
    {
      "id": 2,
      "module": "email:ActionSendEmail",
      "version": 1,
      "parameters": {},
      "mapper": {"to": "{{1.from}}", "subject": "Welcome aboard", "text": "Here is your lead magnet."},
      "metadata": {"designer": {"x": 300, "y": 0}}
    },
    {
      "id": 3,
      "module": "builtin:Sleep",
      "version": 1,
      "parameters": {"delay": 172800},
      "mapper": {},
      "metadata": {"designer": {"x": 600, "y": 0}}
    },
    {
      "id": 4,
      "module": "email:ActionSendEmail",
      "version": 1,
      "parameters": {},
      "mapper": {"to": "{{1.from}}", "subject": "Getting the most out of it", "text": "Three tips to get started."},
      "metadata": {"designer": {"x": 900, "y": 0}}
    }
  ],
  "metadata": {"instant": false, "version": 1, "zone": "eu1.make.com"}
}`,
		N8NJSON: `{
  "name": "Email Follow-Up Sequence",
  "nodes": [
    {
      "parameters": {"event": "subscriberAdded"},
      "name": "New Subscriber Trigger",
      "type": "n8n-nodes-base.gmail",
      "typeVersion": 1,
      "position": [240, 300]
    },
    {
      "parameters": {"toEmail": "={{ $json.email }}", "subject": "Welcome aboard", "text": "Here is your lead magnet."},
      "name": "Send Welcome Email",
      "type": "n8n-nodes-base.emailSend",
      "typeVersion": 1,
      "position": [460, 300]
    },
    {
      "parameters": {"amount": 2, "unit": "days"},
      "name": "Wait Two Days",
      "type": "n8n-nodes-base.wait",
      "typeVersion": 1,
      "position": [680, 300]
    },
    {
      "parameters": {"toEmail": "={{ $json.email }}", "subject": "Getting the most out of it", "text": "Three tips to get started."},
      "name": "Send Tips Email",
      "type": "n8n-nodes-base.emailSend",
      "typeVersion": 1,
      "position": [900, 300]
    }
  ],
  "connections": {
    "New Subscriber Trigger": {"main": [["Send Welcome Email"]]},
    "Send Welcome Email": {"main": [["Wait Two Days"]]},
    "Wait Two Days": {"main": [["Send Tips Email"]]}
  },
  "active": false,
  "settings": {"executionOrder": "v1"},
  "versionId": "1"
}`,
	},
}
